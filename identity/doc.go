// Package identity probes the host for device identity values.
//
// Each probe is stateless and re-reads its source on every call:
//   - UUID reads the kernel's random UUID source and fails hard on anything
//     that is not a well-formed UUID.
//   - UUIDInputs and Fingerprint read the machine identity file and fail hard
//     when it is missing or too short to be trusted.
//   - DeviceDescription and OSVersion fall back to generic defaults and never
//     fail.
//
// Use Cache when values should be computed once per process.
package identity
