package store

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/celulaviver/internal/contact"
	"github.com/celulaviver/internal/locale"
	"github.com/celulaviver/internal/media"
	"github.com/celulaviver/internal/model"
	"github.com/go-playground/validator/v10"
)

const minVisitorPhoneDigits = 10

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("weekday", func(fl validator.FieldLevel) bool {
		_, ok := locale.ParseWeekday(fl.Field().String())
		return ok
	})
	_ = v.RegisterValidation("celltype", func(fl validator.FieldLevel) bool {
		return model.CellType(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("audience", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		return value == model.AllCellTypes || model.CellType(value).Valid()
	})
	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(locale.ISODateLayout, fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("datauri", func(fl validator.FieldLevel) bool {
		return media.ValidatePhoto(fl.Field().String()) == nil
	})
	return v
}

// InputError 描述未通过校验的字段
type InputError struct {
	Field string
	Tag   string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s (%s)", e.Field, e.Tag)
}

func (e *InputError) Unwrap() error { return ErrInvalidInput }

func (s *Store) check(input any) error {
	err := s.validate.Struct(input)
	if err == nil {
		return nil
	}
	var fields validator.ValidationErrors
	if errors.As(err, &fields) && len(fields) > 0 {
		return &InputError{Field: fields[0].Field(), Tag: fields[0].Tag()}
	}
	return fmt.Errorf("%w: %v", ErrInvalidInput, err)
}

// VisitorError 指出第几个首访者的信息不完整，Message 可直接展示
type VisitorError struct {
	Index   int
	Message string
}

func (e *VisitorError) Error() string {
	if e.Index < 0 {
		return e.Message
	}
	return fmt.Sprintf("visitante %d: %s", e.Index+1, e.Message)
}

func (e *VisitorError) Unwrap() error { return ErrInvalidVisitor }

// ValidateVisitors 校验首访者列表：完整姓名至少两个词，号码至少 10 位数字，地址必填，
// 且数量与 firstTimeVisitorsCount 一致
func ValidateVisitors(count int, visitors []model.Visitor) error {
	if count <= 0 {
		return nil
	}
	if len(visitors) != count {
		return &VisitorError{Index: -1, Message: "Por favor, salve todos os visitantes."}
	}
	for i, v := range visitors {
		if len(strings.Fields(v.Name)) < 2 {
			return &VisitorError{Index: i, Message: "Por favor, preencha o NOME COMPLETO."}
		}
		if len(contact.Digits(v.Phone)) < minVisitorPhoneDigits {
			return &VisitorError{Index: i, Message: "Por favor, preencha o WHATSAPP corretamente."}
		}
		if strings.TrimSpace(v.Address) == "" {
			return &VisitorError{Index: i, Message: "Por favor, preencha o ENDEREÇO."}
		}
	}
	return nil
}

func normalizeVisitors(count int, visitors []model.Visitor) []model.Visitor {
	if count <= 0 {
		return nil
	}
	out := make([]model.Visitor, len(visitors))
	for i, v := range visitors {
		v.Name = strings.TrimSpace(v.Name)
		v.Phone = contact.Digits(v.Phone)
		v.Address = strings.TrimSpace(v.Address)
		out[i] = v
	}
	return out
}
