package synology

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/Gregy/synology-surveillance-get-image/internal/domain"
)

const (
	queryPath = "query.cgi"

	// SurveillanceStation はログイン時に指定するセッション名前空間
	SurveillanceStation = "SurveillanceStation"

	infoAPIVersion    = 1
	authAPIVersion    = 6
	cameraAPIVersion  = 9
	loginResponseFmt  = "sid"
	methodQuery       = "Query"
	methodLogin       = "Login"
	methodGetSnapshot = "GetSnapshot"
)

type queryParam struct {
	key   string
	value string
}

// WebAPIURLGenerator はSurveillance Station WebAPIのURLを組み立てる
type WebAPIURLGenerator struct {
	baseURL string
}

func NewWebAPIURLGenerator(baseURL string) *WebAPIURLGenerator {
	return &WebAPIURLGenerator{
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// QueryURL はSYNO.API.InfoでAPIのパスを問い合わせるURLを返す
func (g *WebAPIURLGenerator) QueryURL(apiNames []string) string {
	return g.build(queryPath,
		queryParam{"api", domain.APINameInfo},
		queryParam{"method", methodQuery},
		queryParam{"version", strconv.Itoa(infoAPIVersion)},
		queryParam{"query", strings.Join(apiNames, ",")},
	)
}

// LoginURL はSIDを取得するためのログインURLを返す
func (g *WebAPIURLGenerator) LoginURL(authPath string, credentials domain.Credentials) string {
	return g.build(authPath,
		queryParam{"api", domain.APINameAuth},
		queryParam{"method", methodLogin},
		queryParam{"version", strconv.Itoa(authAPIVersion)},
		queryParam{"account", credentials.Account()},
		queryParam{"passwd", credentials.Password()},
		queryParam{"session", SurveillanceStation},
		queryParam{"format", loginResponseFmt},
	)
}

// SnapshotURL はカメラのスナップショットを取得するURLを返す
func (g *WebAPIURLGenerator) SnapshotURL(cameraPath string, req domain.SnapshotRequest, sid domain.SessionID) string {
	return g.build(cameraPath,
		queryParam{"profileType", req.Profile().String()},
		queryParam{"version", strconv.Itoa(cameraAPIVersion)},
		queryParam{"id", req.Camera().String()},
		queryParam{"api", domain.APINameCamera},
		queryParam{"method", methodGetSnapshot},
		queryParam{"_sid", sid.String()},
	)
}

func (g *WebAPIURLGenerator) build(path string, params ...queryParam) string {
	var b strings.Builder
	b.WriteString(g.baseURL)
	b.WriteString("/webapi/")
	b.WriteString(strings.TrimLeft(path, "/"))
	for i, p := range params {
		if i == 0 {
			b.WriteByte('?')
		} else {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.value))
	}
	return b.String()
}
