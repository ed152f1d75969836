// Package validation проверяет параметры пути и тело запроса по
// декларативным таблицам правил. Каждое правило описывает поле и список
// проверок (предикат и сообщение); все проверки выполняются до конца,
// а ошибки собираются в один список.
package validation

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator"
)

// Location где искать значение поля.
type Location string

const (
	Params Location = "params"
	Body   Location = "body"
)

// Input значения, доступные правилам.
type Input struct {
	Params map[string]string
	Body   map[string]any
}

// lookup возвращает значение поля и признак его наличия.
func (in Input) lookup(loc Location, field string) (any, bool) {
	switch loc {
	case Params:
		v, ok := in.Params[field]
		return v, ok
	case Body:
		v, ok := in.Body[field]
		return v, ok
	default:
		return nil, false
	}
}

// Predicate проверяет значение поля. Значение уже приведено к строке.
type Predicate func(value string, in Input) bool

// Check предикат и сообщение, которое попадёт в ответ при его провале.
type Check struct {
	Test    Predicate
	Message string
}

// Rule набор проверок одного поля.
type Rule struct {
	Field string
	In    Location
	// Optional пропускает проверки, если поле отсутствует.
	Optional bool
	// Trim обрезает пробелы перед проверками.
	Trim   bool
	Checks []Check
}

// FieldError ошибка проверки одного поля.
type FieldError struct {
	Field    string   `json:"field"`
	Message  string   `json:"message"`
	Location Location `json:"location"`
}

// Validate прогоняет все правила и возвращает ошибки в порядке правил и проверок.
// Пустой результат означает, что запрос корректен.
func Validate(rules []Rule, in Input) []FieldError {
	var errs []FieldError
	for _, rule := range rules {
		raw, ok := in.lookup(rule.In, rule.Field)
		if !ok && rule.Optional {
			continue
		}
		value := stringify(raw)
		if rule.Trim {
			value = strings.TrimSpace(value)
		}
		for _, check := range rule.Checks {
			if !check.Test(value, in) {
				errs = append(errs, FieldError{
					Field:    rule.Field,
					Message:  check.Message,
					Location: rule.In,
				})
			}
		}
	}
	return errs
}

func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		return val.String()
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		// Объекты и массивы не проходят ни одной строковой проверки.
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(b)
	}
}

var validate = validator.New()

// Tag строит предикат из тега go-playground/validator, например "min=3" или "email".
func Tag(tag string) Predicate {
	return func(value string, _ Input) bool {
		return validate.Var(value, tag) == nil
	}
}

// Required значение присутствует и не пустое.
func Required() Predicate {
	return Tag("required")
}

// Numeric значение является числом.
func Numeric() Predicate {
	return Tag("numeric")
}

// Positive значение является числом больше нуля.
func Positive() Predicate {
	return func(value string, _ Input) bool {
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return false
		}
		return validate.Var(f, "gt=0") == nil
	}
}

// MaxDecimals число имеет не больше n знаков после запятой.
// Не число пропускается: его отклоняет Numeric.
func MaxDecimals(n int) Predicate {
	return func(value string, _ Input) bool {
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return true
		}
		s := strconv.FormatFloat(f, 'f', -1, 64)
		dot := strings.IndexByte(s, '.')
		return dot < 0 || len(s)-dot-1 <= n
	}
}

// Less число строго меньше limit. Не число пропускается: его отклоняет Numeric.
func Less(limit string) Predicate {
	return func(value string, _ Input) bool {
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return true
		}
		return validate.Var(f, "lt="+limit) == nil
	}
}

// Integer значение является целым числом.
func Integer() Predicate {
	return func(value string, _ Input) bool {
		_, err := strconv.Atoi(value)
		return err == nil
	}
}

// EqualsParam значение совпадает с параметром пути name.
func EqualsParam(name string) Predicate {
	return func(value string, in Input) bool {
		return value == in.Params[name]
	}
}
