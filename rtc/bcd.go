package rtc

// The RTC holds every time and date field in binary-coded decimal: one
// decimal digit per nibble, tens digit in the upper nibble. 0x23 is
// decimal 23.

// DecToBCD encodes a decimal value 0..99.
func DecToBCD(v uint8) uint8 {
	return (v/10)<<4 | v%10
}

// BCDToDec decodes a BCD byte back to its decimal value.
func BCDToDec(v uint8) uint8 {
	return (v>>4)*10 + v&0x0F
}
