package client

import (
	"net/http"

	"github.com/dmitrijs2005/diradmin/internal/common"
)

// Headers is the fixed header set attached to every API request.
type Headers struct {
	Locale          string
	AppVersion      string
	DeviceName      string
	DeviceOSVersion string
	DeviceUDID      string
	DevicePushToken string
	DeviceType      string
}

// DefaultHeaders returns the values the web console has always sent.
func DefaultHeaders() Headers {
	return Headers{
		Locale:          "ar",
		AppVersion:      "11",
		DeviceName:      "chrome",
		DeviceOSVersion: "13",
		DeviceUDID:      "1234",
		DevicePushToken: "123456",
		DeviceType:      "web",
	}
}

// TokenSource exposes the current bearer token, if any.
type TokenSource interface {
	Token() (string, bool)
}

// Decorate sets the fixed header set on h and adds a bearer Authorization
// header only when token is non-empty. It has no other side effects.
func Decorate(h http.Header, hs Headers, token string) {
	h.Set(common.HeaderAccept, common.ContentTypeJSON)
	h.Set(common.HeaderAcceptLanguage, hs.Locale)
	h.Set(common.HeaderAppVersion, hs.AppVersion)
	h.Set(common.HeaderDeviceName, hs.DeviceName)
	h.Set(common.HeaderDeviceOSVersion, hs.DeviceOSVersion)
	h.Set(common.HeaderDeviceUDID, hs.DeviceUDID)
	h.Set(common.HeaderDevicePushToken, hs.DevicePushToken)
	h.Set(common.HeaderDeviceType, hs.DeviceType)

	if token != "" {
		h.Set(common.HeaderAuthorization, "Bearer "+token)
	}
}
