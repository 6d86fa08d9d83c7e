package keystone

// DeviceIdentity is a snapshot of everything the identity probes report for
// the local device. UUID and Fingerprint are empty when their sources were
// unavailable; Description and OSVersion are always populated.
type DeviceIdentity struct {
	UUID        string
	Fingerprint string
	Description string
	OSVersion   string
}
