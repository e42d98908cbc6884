// Package validation はusersフィーチャーの入力スキーマ検証を実装します。
// 違反は安定したエラースキーマ（field, message）で報告されます。
package validation

import (
	"fmt"
	"unicode/utf8"
)

// Schema は検証対象の入力契約を識別します。
type Schema int

const (
	// SchemaCreate は全フィールド必須のユーザー作成スキーマです。
	SchemaCreate Schema = iota
	// SchemaUpdate は全フィールド任意の部分更新スキーマです。
	SchemaUpdate
)

const (
	// minPasswordLength はパスワードの最低文字数を定義します。
	minPasswordLength = 8
	// maxPasswordBytes はbcryptが受け付ける入力の上限バイト数です。
	maxPasswordBytes = 72
)

// fieldOrder fixes the order in which violations are reported.
var fieldOrder = [...]string{"name", "password", "title", "description"}

// maxLengths mirrors the column limits of the app_users table.
var maxLengths = map[string]int{
	"name":        100,
	"title":       200,
	"description": 5000,
}

// FieldError は単一フィールドの検証違反を表します。
// クライアントにそのままJSONとして返せる安定した形を持ちます。
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate は生のJSON入力をスキーマに照らして検証し、入力に実際に
// 含まれていたフィールドだけの正規化マップを返します。
// 違反は固定のフィールド順で走査し、最初の1件のみ報告します。
// 未知のフィールドは無視されます。
func Validate(raw map[string]any, schema Schema) (map[string]string, *FieldError) {
	fields := make(map[string]string, len(fieldOrder))

	for _, name := range fieldOrder {
		v, present := raw[name]
		if !present {
			if schema == SchemaCreate {
				return nil, &FieldError{Field: name, Message: "field is required"}
			}
			continue
		}

		s, ok := v.(string)
		if !ok {
			return nil, &FieldError{Field: name, Message: "must be a string"}
		}
		if s == "" {
			if schema == SchemaCreate {
				return nil, &FieldError{Field: name, Message: "field is required"}
			}
			return nil, &FieldError{Field: name, Message: "must not be empty"}
		}

		if name == "password" {
			if utf8.RuneCountInString(s) < minPasswordLength {
				return nil, &FieldError{
					Field:   name,
					Message: fmt.Sprintf("minimal length of password is %d", minPasswordLength),
				}
			}
			if len(s) > maxPasswordBytes {
				return nil, &FieldError{
					Field:   name,
					Message: fmt.Sprintf("password must be at most %d bytes", maxPasswordBytes),
				}
			}
		} else if max := maxLengths[name]; utf8.RuneCountInString(s) > max {
			return nil, &FieldError{
				Field:   name,
				Message: fmt.Sprintf("must be at most %d characters", max),
			}
		}

		fields[name] = s
	}

	return fields, nil
}
