// Package common contains shared constants used across the directory
// console: header names sent on every API call and the local storage keys.
package common

// Header names attached to outbound API requests.
const (
	HeaderAccept          = "Accept"
	HeaderAcceptLanguage  = "Accept-Language"
	HeaderAppVersion      = "App-Version"
	HeaderDeviceName      = "Device-Name"
	HeaderDeviceOSVersion = "Device-OS-Version"
	HeaderDeviceUDID      = "Device-UDID"
	HeaderDevicePushToken = "Device-Push-Token"
	HeaderDeviceType      = "Device-Type"
	HeaderAuthorization   = "Authorization"
	HeaderContentType     = "Content-Type"
)

// ContentTypeJSON is the media type used for request and response bodies.
const ContentTypeJSON = "application/json"

// TokenStorageKey is the metadata key under which the session token is kept.
const TokenStorageKey = "token"
