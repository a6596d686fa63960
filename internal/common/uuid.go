package common

import (
	"database/sql/driver"
	"fmt"

	"github.com/google/uuid"
)

type UUID string

func NewUUID() UUID {
	return UUID(uuid.NewString())
}

func ParseUUID(value string) (UUID, error) {
	parsed, err := uuid.Parse(value)
	if err != nil {
		return "", fmt.Errorf("parse uuid: %w", err)
	}
	return UUID(parsed.String()), nil
}

func (u UUID) String() string {
	return string(u)
}

func (u UUID) Value() (driver.Value, error) {
	return string(u), nil
}

func (u *UUID) Scan(src any) error {
	switch value := src.(type) {
	case string:
		*u = UUID(value)
	case []byte:
		*u = UUID(string(value))
	case nil:
		*u = ""
	default:
		return fmt.Errorf("unsupported uuid source %T", src)
	}
	return nil
}
