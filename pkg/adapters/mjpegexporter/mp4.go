package mjpegexporter

import (
	"bytes"
	"fmt"

	"github.com/Eyevinn/mp4ff/mp4"
)

// timescale is the track timescale in units per second. 1000 keeps sample
// durations in milliseconds.
const timescale = 1000

// sample is one encoded JPEG frame with its duration.
type sample struct {
	data       []byte
	durationMs int
}

// buildMP4 creates a fragmented MP4 container from encoded JPEG samples.
func buildMP4(samples []sample, width, height int) ([]byte, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("no samples to mux")
	}

	trackID := uint32(1)

	// Create initialization segment
	init := mp4.CreateEmptyInit()
	init.AddEmptyTrack(timescale, "video", "en")

	trak := init.Moov.Trak

	// Create jpeg sample entry; MJPEG needs no codec config box.
	entry := mp4.CreateVisualSampleEntryBox("jpeg", uint16(width), uint16(height), nil)
	trak.Mdia.Minf.Stbl.Stsd.AddChild(entry)

	// Set track header dimensions
	trak.Tkhd.Width = mp4.Fixed32(width << 16)
	trak.Tkhd.Height = mp4.Fixed32(height << 16)

	// Create fragment
	frag, err := mp4.CreateFragment(1, trackID)
	if err != nil {
		return nil, fmt.Errorf("create fragment: %w", err)
	}

	// Add samples to fragment; every JPEG frame is a sync sample.
	decodeTime := uint64(0)
	for _, s := range samples {
		dur := uint32(s.durationMs)

		frag.AddFullSample(mp4.FullSample{
			Sample: mp4.Sample{
				Flags: mp4.SyncSampleFlags,
				Size:  uint32(len(s.data)),
				Dur:   dur,
			},
			DecodeTime: decodeTime,
			Data:       s.data,
		})
		decodeTime += uint64(dur)
	}

	// Write to buffer
	var buf bytes.Buffer

	ftyp := mp4.NewFtyp("isom", 0x200, []string{"isom", "iso2", "mp41"})
	if err := ftyp.Encode(&buf); err != nil {
		return nil, fmt.Errorf("encode ftyp: %w", err)
	}

	if err := init.Moov.Encode(&buf); err != nil {
		return nil, fmt.Errorf("encode moov: %w", err)
	}

	if err := frag.Encode(&buf); err != nil {
		return nil, fmt.Errorf("encode fragment: %w", err)
	}

	return buf.Bytes(), nil
}
