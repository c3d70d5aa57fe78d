// Copyright © 2024 Galvanized Logic Inc.

package codec

import (
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/gazed/bosh/math/vec"
)

// trkMagic is the four-byte signature every extended binary track begins
// with.
var trkMagic = [4]byte{'T', 'R', 'K', 0xF2}

// featureSongInfo names the optional feature that adds a song string to
// the header.
const featureSongInfo = "SONGINFO"

// TRKHeader is the fixed-layout prefix of an extended binary (".trk")
// track: a version byte, a semicolon-separated feature list, an optional
// song name, and the rider's start position.
type TRKHeader struct {
	Version  uint8
	Features []string
	Song     string
	StartPos vec.Vector2
}

// HasFeature reports whether name is present in h.Features.
func (h TRKHeader) HasFeature(name string) bool {
	for _, f := range h.Features {
		if f == name {
			return true
		}
	}
	return false
}

// DecodeTRKHeader reads and validates the fixed-layout header of an
// extended binary track: magic, version, feature list, optional song, and
// start position. It does not read the line records that follow the
// header; the on-disk line format for ".trk" files is a LRA-specific
// bit-packed encoding not specified by this core (see original_source's own
// "TODO - Line, Track" at the same boundary), and is intentionally left to
// a higher-level, format-specific importer layered on top of this decoder.
func DecodeTRKHeader(r io.Reader) (TRKHeader, error) {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return TRKHeader{}, newError(MalformedTrackHeader, "trk: reading magic", err)
	}
	if magic != trkMagic {
		return TRKHeader{}, newError(MalformedTrackHeader, fmt.Sprintf("trk: bad magic %v", magic), nil)
	}

	var version uint8
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return TRKHeader{}, newError(MalformedTrackHeader, "trk: reading version", err)
	}

	var featuresLen uint16
	if err := binary.Read(r, binary.LittleEndian, &featuresLen); err != nil {
		return TRKHeader{}, newError(MalformedTrackHeader, "trk: reading feature-string length", err)
	}
	featuresBuf := make([]byte, featuresLen)
	if _, err := io.ReadFull(r, featuresBuf); err != nil {
		return TRKHeader{}, newError(MalformedTrackHeader, "trk: reading feature string", err)
	}
	var features []string
	if featuresLen > 0 {
		features = strings.Split(string(featuresBuf), ";")
	}

	h := TRKHeader{Version: version, Features: features}

	if h.HasFeature(featureSongInfo) {
		var songLen uint8
		if err := binary.Read(r, binary.LittleEndian, &songLen); err != nil {
			return TRKHeader{}, newError(MalformedTrackHeader, "trk: reading song length", err)
		}
		songBuf := make([]byte, songLen)
		if _, err := io.ReadFull(r, songBuf); err != nil {
			return TRKHeader{}, newError(MalformedTrackHeader, "trk: reading song", err)
		}
		h.Song = string(songBuf)
	}

	var x, y float64
	if err := binary.Read(r, binary.LittleEndian, &x); err != nil {
		return TRKHeader{}, newError(MalformedTrackHeader, "trk: reading start position x", err)
	}
	if err := binary.Read(r, binary.LittleEndian, &y); err != nil {
		return TRKHeader{}, newError(MalformedTrackHeader, "trk: reading start position y", err)
	}
	h.StartPos = vec.New(x, y)

	slog.Debug("codec: decoded trk header", "version", h.Version, "features", h.Features)
	return h, nil
}
