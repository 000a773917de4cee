package usecase

import (
	"encoding/json"
	"fmt"

	"github.com/Gregy/synology-surveillance-get-image/internal/domain"
)

// anyContentType はMIMEタイプを検証しないことを表す
// SYNO.API.Info やログインAPIはバージョンによってContent-Typeが異なるため検証しない
const anyContentType = ""

// truthy は true / "true" / 非ゼロの数値を真として扱う
type truthy bool

func (t *truthy) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch x := v.(type) {
	case bool:
		*t = truthy(x)
	case string:
		*t = truthy(x == "true" || x == "1")
	case float64:
		*t = truthy(x != 0)
	default:
		*t = false
	}
	return nil
}

type webAPIError struct {
	Code int `json:"code"`
}

func describeWebAPIError(e *webAPIError) string {
	if e == nil {
		return "no error code"
	}
	return fmt.Sprintf("error code %d", e.Code)
}

type apiInfoResponse struct {
	Success truthy                     `json:"success"`
	Data    map[string]domain.APIEntry `json:"data"`
	Error   *webAPIError               `json:"error"`
}

type loginResponse struct {
	Success truthy `json:"success"`
	Data    struct {
		SID string `json:"sid"`
	} `json:"data"`
	Error *webAPIError `json:"error"`
}
