// SPDX-License-Identifier: EPL-2.0

package sndfile

import (
	"fmt"
	"strings"

	"github.com/ik5/sndfile/internal/native"
)

// MajorFormat is the container part of a format identifier.
type MajorFormat int32

const (
	FormatWAV   = MajorFormat(native.FormatWAV)
	FormatAIFF  = MajorFormat(native.FormatAIFF)
	FormatAU    = MajorFormat(native.FormatAU)
	FormatRAW   = MajorFormat(native.FormatRAW)
	FormatPAF   = MajorFormat(native.FormatPAF)
	FormatSVX   = MajorFormat(native.FormatSVX)
	FormatNIST  = MajorFormat(native.FormatNIST)
	FormatVOC   = MajorFormat(native.FormatVOC)
	FormatIRCAM = MajorFormat(native.FormatIRCAM)
	FormatW64   = MajorFormat(native.FormatW64)
	FormatMAT4  = MajorFormat(native.FormatMAT4)
	FormatMAT5  = MajorFormat(native.FormatMAT5)
	FormatPVF   = MajorFormat(native.FormatPVF)
	FormatXI    = MajorFormat(native.FormatXI)
	FormatHTK   = MajorFormat(native.FormatHTK)
	FormatSDS   = MajorFormat(native.FormatSDS)
	FormatAVR   = MajorFormat(native.FormatAVR)
	FormatWAVEX = MajorFormat(native.FormatWAVEX)
	FormatSD2   = MajorFormat(native.FormatSD2)
	FormatFLAC  = MajorFormat(native.FormatFLAC)
	FormatCAF   = MajorFormat(native.FormatCAF)
	FormatWVE   = MajorFormat(native.FormatWVE)
	FormatOGG   = MajorFormat(native.FormatOGG)
	FormatMPC2K = MajorFormat(native.FormatMPC2K)
	FormatRF64  = MajorFormat(native.FormatRF64)
	FormatMPEG  = MajorFormat(native.FormatMPEG)
)

var majorNames = map[MajorFormat]string{
	FormatWAV: "WAV", FormatAIFF: "AIFF", FormatAU: "AU", FormatRAW: "RAW",
	FormatPAF: "PAF", FormatSVX: "SVX", FormatNIST: "NIST", FormatVOC: "VOC",
	FormatIRCAM: "IRCAM", FormatW64: "W64", FormatMAT4: "MAT4", FormatMAT5: "MAT5",
	FormatPVF: "PVF", FormatXI: "XI", FormatHTK: "HTK", FormatSDS: "SDS",
	FormatAVR: "AVR", FormatWAVEX: "WAVEX", FormatSD2: "SD2", FormatFLAC: "FLAC",
	FormatCAF: "CAF", FormatWVE: "WVE", FormatOGG: "OGG", FormatMPC2K: "MPC2K",
	FormatRF64: "RF64", FormatMPEG: "MPEG",
}

func (m MajorFormat) String() string {
	if name, ok := majorNames[m]; ok {
		return name
	}

	return fmt.Sprintf("MajorFormat(0x%06x)", int32(m))
}

// Subtype is the sample encoding part of a format identifier.
type Subtype int32

const (
	SubtypePCMS8        = Subtype(native.FormatPCMS8)
	SubtypePCM16        = Subtype(native.FormatPCM16)
	SubtypePCM24        = Subtype(native.FormatPCM24)
	SubtypePCM32        = Subtype(native.FormatPCM32)
	SubtypePCMU8        = Subtype(native.FormatPCMU8)
	SubtypeFloat        = Subtype(native.FormatFloat)
	SubtypeDouble       = Subtype(native.FormatDouble)
	SubtypeULAW         = Subtype(native.FormatULAW)
	SubtypeALAW         = Subtype(native.FormatALAW)
	SubtypeIMAADPCM     = Subtype(native.FormatIMAADPCM)
	SubtypeMSADPCM      = Subtype(native.FormatMSADPCM)
	SubtypeGSM610       = Subtype(native.FormatGSM610)
	SubtypeVOXADPCM     = Subtype(native.FormatVOXADPCM)
	SubtypeNMSADPCM16   = Subtype(native.FormatNMSADPCM16)
	SubtypeNMSADPCM24   = Subtype(native.FormatNMSADPCM24)
	SubtypeNMSADPCM32   = Subtype(native.FormatNMSADPCM32)
	SubtypeG72132       = Subtype(native.FormatG72132)
	SubtypeG72324       = Subtype(native.FormatG72324)
	SubtypeG72340       = Subtype(native.FormatG72340)
	SubtypeDWVW12       = Subtype(native.FormatDWVW12)
	SubtypeDWVW16       = Subtype(native.FormatDWVW16)
	SubtypeDWVW24       = Subtype(native.FormatDWVW24)
	SubtypeDWVWN        = Subtype(native.FormatDWVWN)
	SubtypeDPCM8        = Subtype(native.FormatDPCM8)
	SubtypeDPCM16       = Subtype(native.FormatDPCM16)
	SubtypeVorbis       = Subtype(native.FormatVorbis)
	SubtypeOpus         = Subtype(native.FormatOpus)
	SubtypeALAC16       = Subtype(native.FormatALAC16)
	SubtypeALAC20       = Subtype(native.FormatALAC20)
	SubtypeALAC24       = Subtype(native.FormatALAC24)
	SubtypeALAC32       = Subtype(native.FormatALAC32)
	SubtypeMPEGLayerI   = Subtype(native.FormatMPEGLayerI)
	SubtypeMPEGLayerII  = Subtype(native.FormatMPEGLayerII)
	SubtypeMPEGLayerIII = Subtype(native.FormatMPEGLayerIII)
)

var subtypeNames = map[Subtype]string{
	SubtypePCMS8: "PCM_S8", SubtypePCM16: "PCM_16", SubtypePCM24: "PCM_24",
	SubtypePCM32: "PCM_32", SubtypePCMU8: "PCM_U8", SubtypeFloat: "FLOAT",
	SubtypeDouble: "DOUBLE", SubtypeULAW: "ULAW", SubtypeALAW: "ALAW",
	SubtypeIMAADPCM: "IMA_ADPCM", SubtypeMSADPCM: "MS_ADPCM", SubtypeGSM610: "GSM610",
	SubtypeVOXADPCM: "VOX_ADPCM", SubtypeNMSADPCM16: "NMS_ADPCM_16",
	SubtypeNMSADPCM24: "NMS_ADPCM_24", SubtypeNMSADPCM32: "NMS_ADPCM_32",
	SubtypeG72132: "G721_32", SubtypeG72324: "G723_24", SubtypeG72340: "G723_40",
	SubtypeDWVW12: "DWVW_12", SubtypeDWVW16: "DWVW_16", SubtypeDWVW24: "DWVW_24",
	SubtypeDWVWN: "DWVW_N", SubtypeDPCM8: "DPCM_8", SubtypeDPCM16: "DPCM_16",
	SubtypeVorbis: "VORBIS", SubtypeOpus: "OPUS", SubtypeALAC16: "ALAC_16",
	SubtypeALAC20: "ALAC_20", SubtypeALAC24: "ALAC_24", SubtypeALAC32: "ALAC_32",
	SubtypeMPEGLayerI: "MPEG_LAYER_I", SubtypeMPEGLayerII: "MPEG_LAYER_II",
	SubtypeMPEGLayerIII: "MPEG_LAYER_III",
}

func (s Subtype) String() string {
	if name, ok := subtypeNames[s]; ok {
		return name
	}

	return fmt.Sprintf("Subtype(0x%04x)", int32(s))
}

// Endianness overrides the byte order a container would otherwise use.
type Endianness int32

const (
	EndianFile   = Endianness(native.EndianFile)
	EndianLittle = Endianness(native.EndianLittle)
	EndianBig    = Endianness(native.EndianBig)
	EndianCPU    = Endianness(native.EndianCPU)
)

func (e Endianness) String() string {
	switch e {
	case EndianFile:
		return "FILE"
	case EndianLittle:
		return "LITTLE"
	case EndianBig:
		return "BIG"
	case EndianCPU:
		return "CPU"
	}

	return fmt.Sprintf("Endianness(0x%08x)", int32(e))
}

const knownBits = native.FormatTypeMask | native.FormatSubMask | native.FormatEndMask

// Format is a structured format identifier. Whether a combination is usable
// is up to the library; see FormatCheck.
type Format struct {
	Major   MajorFormat
	Subtype Subtype
	Endian  Endianness

	// bits outside the three masks, kept so Raw reproduces the input
	extra int32
}

// ParseFormat splits a raw format bitmask. Raw on the result returns raw.
func ParseFormat(raw int32) Format {
	return Format{
		Major:   MajorFormat(raw & native.FormatTypeMask),
		Subtype: Subtype(raw & native.FormatSubMask),
		Endian:  Endianness(raw & native.FormatEndMask),
		extra:   raw &^ knownBits,
	}
}

// Raw returns the bitmask the library understands.
func (f Format) Raw() int32 {
	return int32(f.Major)&native.FormatTypeMask |
		int32(f.Subtype)&native.FormatSubMask |
		int32(f.Endian)&native.FormatEndMask |
		f.extra
}

func (f Format) String() string {
	parts := []string{f.Major.String(), f.Subtype.String()}
	if f.Endian != EndianFile {
		parts = append(parts, f.Endian.String())
	}
	if f.extra != 0 {
		parts = append(parts, fmt.Sprintf("0x%08x", uint32(f.extra)))
	}

	return strings.Join(parts, "|")
}
