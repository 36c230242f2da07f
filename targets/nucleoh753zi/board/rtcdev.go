//go:build tinygo

package board

import (
	"nucleolab/core"
	"nucleolab/rtc"
)

const (
	pwrDBP = 1 << 8

	// Oscillator-ready polls give up after this many reads rather than
	// hanging the boot forever on dead silicon.
	readyTimeout = 1000000
)

// rtcRegisters adapts the hardware register file to rtc.Registers.
type rtcRegisters struct{}

func (rtcRegisters) TR() uint32         { return rtcHW.TR.Get() }
func (rtcRegisters) SetTR(v uint32)     { rtcHW.TR.Set(v) }
func (rtcRegisters) DR() uint32         { return rtcHW.DR.Get() }
func (rtcRegisters) SetDR(v uint32)     { rtcHW.DR.Set(v) }
func (rtcRegisters) ICSR() uint32       { return rtcHW.ICSR.Get() }
func (rtcRegisters) SetICSR(v uint32)   { rtcHW.ICSR.Set(v) }
func (rtcRegisters) SetPRER(v uint32)   { rtcHW.PRER.Set(v) }
func (rtcRegisters) CR() uint32         { return rtcHW.CR.Get() }
func (rtcRegisters) SetCR(v uint32)     { rtcHW.CR.Set(v) }
func (rtcRegisters) WriteWPR(v uint32)  { rtcHW.WPR.Set(v) }
func (rtcRegisters) SetALRMAR(v uint32) { rtcHW.ALRMA.Set(v) }
func (rtcRegisters) SR() uint32         { return rtcHW.SR.Get() }
func (rtcRegisters) WriteSCR(v uint32)  { rtcHW.SCR.Set(v) }

// InitRTC opens the backup domain, starts the low-speed internal
// oscillator, clocks the RTC from it and returns the device handle. The
// oscillator poll can time out on broken hardware.
func InitRTC() (*rtc.Device, error) {
	// Backup-domain writes are locked behind PWR DBP.
	pwr.CR1.SetBits(pwrDBP)
	for pwr.CR1.Get()&pwrDBP == 0 {
	}

	rcc.CSR.SetBits(csrLSION)
	timeout := readyTimeout
	for rcc.CSR.Get()&csrLSIRDY == 0 {
		timeout--
		if timeout == 0 {
			return nil, core.ErrHardwareTimeout
		}
	}

	rcc.BDCR.ReplaceBits(bdcrLSISel>>8, bdcrRTCSEL>>8, 8)
	rcc.BDCR.SetBits(bdcrRTCEN)
	enableClock(&rcc.APB4ENR, rccRTCAPBEN)

	return rtc.New(rtcRegisters{}), nil
}
