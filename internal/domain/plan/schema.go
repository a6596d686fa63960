package plan

import (
	"errors"

	"hireboard/internal/common"
	"hireboard/internal/schema"
)

var fields = []schema.Field{
	schema.String("name", "min=1"),
	schema.Integer("price", "min=0"),
	schema.Integer("duration", "min=1"),
	schema.StringList("features", "min=1"),
}

var (
	CreateSchema = schema.Object(fields...)
	UpdateSchema = CreateSchema.Partial()
)

func ParseCreate(raw []byte) (Input, error) {
	values, err := CreateSchema.Parse(raw)
	if err != nil {
		return Input{}, validationError(err)
	}
	var input Input
	input.Name, _ = values.String("name")
	input.Price, _ = values.Integer("price")
	input.Duration, _ = values.Integer("duration")
	input.Features, _ = values.StringList("features")
	return input, nil
}

func ParseUpdate(raw []byte) (Patch, error) {
	values, err := UpdateSchema.Parse(raw)
	if err != nil {
		return Patch{}, validationError(err)
	}
	var patch Patch
	if name, ok := values.String("name"); ok {
		patch.Name = &name
	}
	if price, ok := values.Integer("price"); ok {
		patch.Price = &price
	}
	if duration, ok := values.Integer("duration"); ok {
		patch.Duration = &duration
	}
	if features, ok := values.StringList("features"); ok {
		patch.Features = features
	}
	return patch, nil
}

func validationError(err error) error {
	var schemaErr *schema.Error
	if errors.As(err, &schemaErr) {
		return &common.Error{Code: common.CodeValidation, Message: "invalid plan", Fields: schemaErr.Fields(), Err: err}
	}
	return common.NewError(common.CodeValidation, "invalid plan", err)
}
