package models

type Setting struct {
	ID             int     `gorm:"primaryKey" json:"id"`
	Name           string  `gorm:"size:100" json:"name"`
	Company        string  `gorm:"size:100" json:"company"`
	MinInvest      float64 `gorm:"type:decimal(15,2);default:0" json:"min_invest"`
	MaxInvest      float64 `gorm:"type:decimal(15,2);default:0" json:"max_invest"`
	Maintenance    bool    `gorm:"default:false" json:"maintenance"`
	ClosedRegister bool    `gorm:"default:false" json:"closed_register"`
	LinkCS         string  `gorm:"size:255" json:"link_cs"`
	LinkGroup      string  `gorm:"size:255" json:"link_group"`
}

func (Setting) TableName() string {
	return "settings"
}
