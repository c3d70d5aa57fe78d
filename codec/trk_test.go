// Copyright © 2024 Galvanized Logic Inc.

package codec

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func writeTRKHeader(t *testing.T, features string, song string, x, y float64) []byte {
	t.Helper()
	var buf bytes.Buffer
	buf.Write(trkMagic[:])
	buf.WriteByte(1) // version

	binary.Write(&buf, binary.LittleEndian, uint16(len(features)))
	buf.WriteString(features)

	if features == featureSongInfo {
		buf.WriteByte(byte(len(song)))
		buf.WriteString(song)
	}

	binary.Write(&buf, binary.LittleEndian, x)
	binary.Write(&buf, binary.LittleEndian, y)
	return buf.Bytes()
}

func TestDecodeTRKHeaderWithoutSongInfo(t *testing.T) {
	raw := writeTRKHeader(t, "REMOUNT", "", 12.5, -4.0)
	h, err := DecodeTRKHeader(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("DecodeTRKHeader: %v", err)
	}
	if h.Version != 1 {
		t.Errorf("version: got %d want 1", h.Version)
	}
	if !h.HasFeature("REMOUNT") {
		t.Errorf("expected REMOUNT feature, got %v", h.Features)
	}
	if h.Song != "" {
		t.Errorf("expected no song, got %q", h.Song)
	}
	if h.StartPos.X != 12.5 || h.StartPos.Y != -4.0 {
		t.Errorf("start position: got %v", h.StartPos)
	}
}

func TestDecodeTRKHeaderWithSongInfo(t *testing.T) {
	raw := writeTRKHeader(t, featureSongInfo, "a theme", 0, 0)
	h, err := DecodeTRKHeader(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("DecodeTRKHeader: %v", err)
	}
	if !h.HasFeature(featureSongInfo) {
		t.Errorf("expected SONGINFO feature, got %v", h.Features)
	}
	if h.Song != "a theme" {
		t.Errorf("song: got %q want %q", h.Song, "a theme")
	}
}

func TestDecodeTRKHeaderBadMagic(t *testing.T) {
	raw := writeTRKHeader(t, "", "", 0, 0)
	raw[0] = 'X'
	_, err := DecodeTRKHeader(bytes.NewReader(raw))
	var ce *Error
	if !asError(err, &ce) || ce.Kind != MalformedTrackHeader {
		t.Errorf("expected a MalformedTrackHeader codec.Error, got %v", err)
	}
}

func TestDecodeTRKHeaderTruncated(t *testing.T) {
	raw := writeTRKHeader(t, "REMOUNT", "", 1, 2)
	_, err := DecodeTRKHeader(bytes.NewReader(raw[:len(raw)-3]))
	var ce *Error
	if !asError(err, &ce) || ce.Kind != MalformedTrackHeader {
		t.Errorf("expected a MalformedTrackHeader codec.Error, got %v", err)
	}
}
