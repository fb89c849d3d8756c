package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	govalidator "github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var (
	trans     ut.Translator
	setupOnce sync.Once
)

// setupValidator registers English translations on Gin's binding engine and
// reports fields by their JSON names. Safe to call more than once.
func setupValidator() {
	setupOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*govalidator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		enLocale := en.New()
		uni := ut.New(enLocale, enLocale)
		trans, _ = uni.GetTranslator("en")
		_ = en_translations.RegisterDefaultTranslations(v, trans)
	})
}

// bindError is a failed request binding. Missing is true when every failure
// is an absent or zero required field.
type bindError struct {
	Missing bool
	Fields  map[string]string
}

// translateErrors maps a binding error to field name -> message. Errors that
// are not validation errors (bad JSON, wrong types) land under "detail".
func translateErrors(err error) *bindError {
	fields := make(map[string]string)

	var ve govalidator.ValidationErrors
	if errors.As(err, &ve) {
		missing := true
		for _, fe := range ve {
			if trans != nil {
				fields[fe.Field()] = fe.Translate(trans)
			} else {
				fields[fe.Field()] = fe.Error()
			}
			if fe.Tag() != "required" {
				missing = false
			}
		}
		return &bindError{Missing: missing, Fields: fields}
	}

	fields["detail"] = err.Error()
	return &bindError{Fields: fields}
}

// bind decodes and validates the JSON request body into dst, which must
// point to a struct. An empty body reads as {}. A required key that is absent
// or null is reported as missing before any type error in the other fields.
func bind(c *gin.Context, dst any) *bindError {
	raw, err := c.GetRawData()
	if err != nil {
		return translateErrors(err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		raw = []byte("{}")
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(raw, &keys); err != nil {
		return translateErrors(err)
	}
	if absent := missingKeys(dst, keys); len(absent) > 0 {
		fields := make(map[string]string, len(absent))
		for _, k := range absent {
			fields[k] = k + " is a required field"
		}
		return &bindError{Missing: true, Fields: fields}
	}

	if err := binding.JSON.BindBody(raw, dst); err != nil {
		return translateErrors(err)
	}
	return nil
}

// missingKeys lists the JSON names of dst's required fields that are absent
// from keys or set to null.
func missingKeys(dst any, keys map[string]json.RawMessage) []string {
	t := reflect.TypeOf(dst)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}

	var absent []string
	for i := range t.NumField() {
		fld := t.Field(i)
		if !strings.Contains(fld.Tag.Get("binding"), "required") {
			continue
		}
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" {
			name = fld.Name
		}
		v, ok := keys[name]
		if !ok || bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			absent = append(absent, name)
		}
	}
	return absent
}
