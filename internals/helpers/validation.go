package helper

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// MapValidationErrors mengubah validator.ValidationErrors menjadi map field → pesan
// untuk dikirim lewat JsonValidationError. Field name dipakai dalam snake_case
// supaya konsisten dengan payload JSON.
func MapValidationErrors(err error) map[string][]string {
	out := map[string][]string{}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		out["body"] = []string{"Payload tidak valid"}
		return out
	}
	for _, fe := range ve {
		field := toSnakeCase(fe.Field())
		var msg string
		switch fe.Tag() {
		case "required":
			msg = "wajib diisi"
		case "email":
			msg = "format email tidak valid"
		case "min":
			msg = "minimal " + fe.Param()
		case "max":
			msg = "maksimal " + fe.Param()
		case "gte":
			msg = "harus >= " + fe.Param()
		case "oneof":
			msg = "harus salah satu dari: " + fe.Param()
		case "uuid4", "uuid":
			msg = "harus UUID yang valid"
		default:
			msg = "format tidak valid"
		}
		out[field] = append(out[field], msg)
	}
	return out
}

func toSnakeCase(s string) string {
	rs := []rune(s)
	var b strings.Builder
	for i, r := range rs {
		if r >= 'A' && r <= 'Z' {
			// pisahkan kata: huruf besar setelah huruf kecil, atau akhir dari
			// rangkaian huruf besar (mis. "GroupID" → "group_id")
			if i > 0 && (rs[i-1] < 'A' || rs[i-1] > 'Z' ||
				(i+1 < len(rs) && rs[i+1] >= 'a' && rs[i+1] <= 'z')) {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
