// SPDX-License-Identifier: EPL-2.0

package native

// Open modes.
const (
	ModeRead      = 0x10
	ModeWrite     = 0x20
	ModeReadWrite = 0x30
)

// Boolean values used by the C API.
const (
	False = 0
	True  = 1
)

// Seek whence values.
const (
	SeekSet = 0
	SeekCur = 1
	SeekEnd = 2
)

// Major (container) formats.
const (
	FormatWAV   int32 = 0x010000
	FormatAIFF  int32 = 0x020000
	FormatAU    int32 = 0x030000
	FormatRAW   int32 = 0x040000
	FormatPAF   int32 = 0x050000
	FormatSVX   int32 = 0x060000
	FormatNIST  int32 = 0x070000
	FormatVOC   int32 = 0x080000
	FormatIRCAM int32 = 0x0A0000
	FormatW64   int32 = 0x0B0000
	FormatMAT4  int32 = 0x0C0000
	FormatMAT5  int32 = 0x0D0000
	FormatPVF   int32 = 0x0E0000
	FormatXI    int32 = 0x0F0000
	FormatHTK   int32 = 0x100000
	FormatSDS   int32 = 0x110000
	FormatAVR   int32 = 0x120000
	FormatWAVEX int32 = 0x130000
	FormatSD2   int32 = 0x160000
	FormatFLAC  int32 = 0x170000
	FormatCAF   int32 = 0x180000
	FormatWVE   int32 = 0x190000
	FormatOGG   int32 = 0x200000
	FormatMPC2K int32 = 0x210000
	FormatRF64  int32 = 0x220000
	FormatMPEG  int32 = 0x230000
)

// Subtypes (sample encodings).
const (
	FormatPCMS8        int32 = 0x0001
	FormatPCM16        int32 = 0x0002
	FormatPCM24        int32 = 0x0003
	FormatPCM32        int32 = 0x0004
	FormatPCMU8        int32 = 0x0005
	FormatFloat        int32 = 0x0006
	FormatDouble       int32 = 0x0007
	FormatULAW         int32 = 0x0010
	FormatALAW         int32 = 0x0011
	FormatIMAADPCM     int32 = 0x0012
	FormatMSADPCM      int32 = 0x0013
	FormatGSM610       int32 = 0x0020
	FormatVOXADPCM     int32 = 0x0021
	FormatNMSADPCM16   int32 = 0x0022
	FormatNMSADPCM24   int32 = 0x0023
	FormatNMSADPCM32   int32 = 0x0024
	FormatG72132       int32 = 0x0030
	FormatG72324       int32 = 0x0031
	FormatG72340       int32 = 0x0032
	FormatDWVW12       int32 = 0x0040
	FormatDWVW16       int32 = 0x0041
	FormatDWVW24       int32 = 0x0042
	FormatDWVWN        int32 = 0x0043
	FormatDPCM8        int32 = 0x0050
	FormatDPCM16       int32 = 0x0051
	FormatVorbis       int32 = 0x0060
	FormatOpus         int32 = 0x0064
	FormatALAC16       int32 = 0x0070
	FormatALAC20       int32 = 0x0071
	FormatALAC24       int32 = 0x0072
	FormatALAC32       int32 = 0x0073
	FormatMPEGLayerI   int32 = 0x0080
	FormatMPEGLayerII  int32 = 0x0081
	FormatMPEGLayerIII int32 = 0x0082
)

// Endianness overrides.
const (
	EndianFile   int32 = 0x00000000
	EndianLittle int32 = 0x10000000
	EndianBig    int32 = 0x20000000
	EndianCPU    int32 = 0x30000000
)

// Masks for splitting a combined format.
const (
	FormatSubMask  int32 = 0x0000FFFF
	FormatTypeMask int32 = 0x0FFF0000
	FormatEndMask  int32 = 0x30000000
)

// String kinds for GetString/SetString.
const (
	StrTitle       = 0x01
	StrCopyright   = 0x02
	StrSoftware    = 0x03
	StrArtist      = 0x04
	StrComment     = 0x05
	StrDate        = 0x06
	StrAlbum       = 0x07
	StrLicense     = 0x08
	StrTrackNumber = 0x09
	StrGenre       = 0x10
)

// Public error codes.
const (
	ErrNoError             = 0
	ErrUnrecognisedFormat  = 1
	ErrSystem              = 2
	ErrMalformedFile       = 3
	ErrUnsupportedEncoding = 4
)
