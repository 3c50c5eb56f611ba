package auth

import (
	"errors"
	"fmt"
	"testing"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

func TestIsDuplicateKey_MySQL1062(t *testing.T) {
	err := &mysqldriver.MySQLError{Number: 1062, Message: "Duplicate entry 'jane@example.com' for key 'users.idx_users_email'"}
	if !isDuplicateKey(err) {
		t.Fatal("expected MySQL 1062 to be treated as a duplicate key")
	}
	if !isDuplicateKey(fmt.Errorf("create user: %w", err)) {
		t.Fatal("expected wrapped 1062 to be treated as a duplicate key")
	}
}

func TestIsDuplicateKey_GormTranslated(t *testing.T) {
	if !isDuplicateKey(gorm.ErrDuplicatedKey) {
		t.Fatal("expected gorm.ErrDuplicatedKey to be treated as a duplicate key")
	}
}

func TestIsDuplicateKey_OtherErrors(t *testing.T) {
	if isDuplicateKey(errors.New("connection reset")) {
		t.Fatal("generic error must not be treated as a duplicate key")
	}
	if isDuplicateKey(&mysqldriver.MySQLError{Number: 1205, Message: "Lock wait timeout exceeded"}) {
		t.Fatal("non-1062 MySQL error must not be treated as a duplicate key")
	}
}
