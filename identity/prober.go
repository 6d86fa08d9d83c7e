package identity

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"runtime"
	"strconv"
	"strings"

	"keystone"

	"github.com/google/uuid"
)

const (
	// DefaultDeviceDescription is reported when the host has no readable
	// release metadata.
	DefaultDeviceDescription = "Unknown Device"
	// DefaultOSVersion is reported when the host version cannot be queried.
	DefaultOSVersion = "unknown"

	minMachineIDLen = 10
)

// fingerprintNamespace scopes name-based fingerprint UUIDs to this project.
var fingerprintNamespace = uuid.MustParse("6f1c9a52-3d8e-4b7a-9c21-5e0f8d4a7b13")

var versionPattern = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)`)

// Sources names the files a Prober reads. An empty path means the platform
// has no such source.
type Sources struct {
	KernelUUID string
	OSRelease  string
	MachineID  string
}

// LinuxSources are the standard Linux locations.
var LinuxSources = Sources{
	KernelUUID: "/proc/sys/kernel/random/uuid",
	OSRelease:  "/etc/os-release",
	MachineID:  "/etc/machine-id",
}

// Prober runs identity probes against a set of sources.
// The zero value reads nothing and reports defaults and failures only.
type Prober struct {
	Sources Sources

	// ReadFile and Uname default to os.ReadFile and the host uname release.
	ReadFile func(path string) ([]byte, error)
	Uname    func() (string, error)
	Logger   *slog.Logger
}

// Linux returns a prober for the Linux data sources.
func Linux() *Prober {
	return &Prober{Sources: LinuxSources}
}

// Generic returns a prober for platforms without file-based sources. Its
// UUID comes from the process's cryptographic random source.
func Generic() *Prober {
	return &Prober{}
}

// Default returns the prober for the host OS.
func Default() *Prober {
	if runtime.GOOS == "linux" {
		return Linux()
	}
	return Generic()
}

// UUID returns a fresh random UUID in canonical 36-character form.
func (p *Prober) UUID() (string, error) {
	if p.Sources.KernelUUID == "" {
		u, err := uuid.NewRandom()
		if err != nil {
			return "", &keystone.IdentitySourceError{Source: "random uuid", Err: err}
		}
		return u.String(), nil
	}

	data, err := p.readFile(p.Sources.KernelUUID)
	if err != nil {
		return "", &keystone.IdentitySourceError{Source: p.Sources.KernelUUID, Err: err}
	}
	val, err := parseKernelUUID(data)
	if err != nil {
		return "", &keystone.IdentitySourceError{Source: p.Sources.KernelUUID, Err: err}
	}
	return val, nil
}

func parseKernelUUID(data []byte) (string, error) {
	val := string(bytes.TrimSuffix(data, []byte("\n")))
	if len(val) != 36 {
		return "", fmt.Errorf("kernel uuid has %d bytes, want 36", len(val))
	}
	if _, err := uuid.Parse(val); err != nil {
		return "", fmt.Errorf("kernel uuid malformed: %w", err)
	}
	return val, nil
}

// UUIDInputs returns the values a device fingerprint is derived from.
// There is no fallback: a missing or short machine id is an error.
func (p *Prober) UUIDInputs() ([]string, error) {
	if p.Sources.MachineID == "" {
		return nil, &keystone.IdentitySourceError{
			Source: "machine-id",
			Err:    errors.New("no machine identity source on this platform"),
		}
	}

	data, err := p.readFile(p.Sources.MachineID)
	if err != nil {
		return nil, &keystone.IdentitySourceError{Source: p.Sources.MachineID, Err: err}
	}
	id := strings.TrimSpace(string(data))
	if len(id) < minMachineIDLen {
		return nil, &keystone.IdentitySourceError{
			Source: p.Sources.MachineID,
			Err:    fmt.Errorf("unexpected machine-id value of %d bytes", len(id)),
		}
	}
	return []string{id}, nil
}

// Fingerprint returns a name-based UUID over UUIDInputs. It is stable for as
// long as the inputs are.
func (p *Prober) Fingerprint() (string, error) {
	inputs, err := p.UUIDInputs()
	if err != nil {
		return "", err
	}
	return uuid.NewSHA1(fingerprintNamespace, []byte(strings.Join(inputs, "\n"))).String(), nil
}

// DeviceDescription returns a human-readable name for the device such as
// "Ubuntu 20.04".
func (p *Prober) DeviceDescription() string {
	if p.Sources.OSRelease == "" {
		return DefaultDeviceDescription
	}

	data, err := p.readFile(p.Sources.OSRelease)
	if err != nil {
		p.logger().Debug("Device description source unavailable.", "source", p.Sources.OSRelease, "err", err)
		return DefaultDeviceDescription
	}
	if name, ok := prettyName(data); ok {
		return name
	}
	p.logger().Debug("Device description not found.", "source", p.Sources.OSRelease)
	return DefaultDeviceDescription
}

// prettyName takes the text between the first and last double quote of the
// first PRETTY_NAME= line.
func prettyName(data []byte) (string, bool) {
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := sc.Text()
		if !strings.Contains(line, "PRETTY_NAME=") {
			continue
		}
		start := strings.IndexByte(line, '"')
		end := strings.LastIndexByte(line, '"')
		if start < 0 || end <= start+1 {
			return "", false
		}
		return line[start+1 : end], true
	}
	return "", false
}

// OSVersion returns the kernel release, normalized to major.minor.bugfix
// when it starts with three numbers.
func (p *Prober) OSVersion() string {
	uname := p.Uname
	if uname == nil {
		uname = unameRelease
	}
	release, err := uname()
	if err != nil {
		p.logger().Debug("OS version source unavailable.", "err", err)
		return DefaultOSVersion
	}
	return normalizeVersion(release)
}

func normalizeVersion(release string) string {
	m := versionPattern.FindStringSubmatch(release)
	if m == nil {
		return release
	}
	var parts [3]uint64
	for i := range parts {
		n, err := strconv.ParseUint(m[i+1], 10, 32)
		if err != nil {
			return release
		}
		parts[i] = n
	}
	return fmt.Sprintf("%d.%d.%d", parts[0], parts[1], parts[2])
}

func (p *Prober) readFile(path string) ([]byte, error) {
	if p.ReadFile != nil {
		return p.ReadFile(path)
	}
	return os.ReadFile(path)
}

func (p *Prober) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.Default()
}
