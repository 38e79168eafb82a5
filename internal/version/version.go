package version

// Version is the thermoq release version.
const Version = "1.2.0"

// UserAgent returns the value sent in the User-Agent header of every
// outgoing request.
func UserAgent() string {
	return "thermoq/" + Version
}
