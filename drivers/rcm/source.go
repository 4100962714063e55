package rcm

import "rcm-go/drivers/rcm/layout"

// Source identifies one reset cause. Values are only declared by this
// package, one per cause the build supports, so code outside it cannot name
// a reserved bit or a cause the part does not have.
type Source struct {
	bit uint8 // index across SRS0:SRS1
}

// Causes present on every part. Part-specific causes are declared in the
// feature files.
var (
	SourceWakeup       = Source{layout.BitWakeup}  // low-leakage wakeup
	SourceLowVoltage   = Source{layout.BitLVD}     // low-voltage detect
	SourceWatchdog     = Source{layout.BitWDOG}    // COP/watchdog timeout
	SourcePin          = Source{layout.BitPIN}     // external RESET_b pin
	SourcePowerOn      = Source{layout.BitPOR}     // power-on
	SourceLockup       = Source{layout.BitLOCKUP}  // core lockup
	SourceSoftware     = Source{layout.BitSW}      // SYSRESETREQ
	SourceMDMAP        = Source{layout.BitMDMAP}   // debugger via MDM-AP
	SourceStopAckError = Source{layout.BitSACKERR} // stop mode acknowledge error
)

// Bit returns the index of the cause's status bit across SRS0:SRS1. The
// same index selects the sticky bit in SSRS0:SSRS1.
func (s Source) Bit() uint8 { return s.bit }

func (s Source) String() string {
	if b, ok := layout.Lookup(s.bit); ok {
		return b.Name
	}
	return "unknown"
}

// Supported reports whether s is a cause this build declares.
func (s Source) Supported() bool {
	b, ok := layout.Lookup(s.bit)
	return ok && Supported.Has(b.Feature)
}

// mustSupport panics when s names a reserved bit or a cause this build does
// not declare. Only code inside the package can build such a value.
func (s Source) mustSupport() {
	if !s.Supported() {
		panic("rcm: unsupported reset source " + s.String())
	}
}

// Sources returns the causes this build declares, in register order.
func Sources() []Source {
	out := make([]Source, 0, len(layout.StatusBits))
	for _, b := range layout.StatusBits {
		if Supported.Has(b.Feature) {
			out = append(out, Source{b.Code})
		}
	}
	return out
}

// ParseSource maps a name produced by String back to a supported Source.
func ParseSource(name string) (Source, bool) {
	for _, s := range Sources() {
		if s.String() == name {
			return s, true
		}
	}
	return Source{}, false
}
