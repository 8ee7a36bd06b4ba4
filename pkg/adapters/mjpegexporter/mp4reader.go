package mjpegexporter

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	"github.com/Eyevinn/mp4ff/mp4"
)

// VideoFrame represents a frame read back from an exported video.
type VideoFrame struct {
	Image       image.Image
	TimestampMs int
	DurationMs  int
}

// ReadFrames parses a fragmented MP4 produced by the Exporter and decodes
// every JPEG sample back into an image. Used to verify exports round-trip.
func ReadFrames(mp4Data []byte) ([]VideoFrame, error) {
	mp4File, err := mp4.DecodeFile(bytes.NewReader(mp4Data))
	if err != nil {
		return nil, fmt.Errorf("decode mp4: %w", err)
	}

	if !mp4File.IsFragmented() {
		return nil, fmt.Errorf("progressive MP4 not supported, exports are fragmented")
	}

	videoTrackID, trex, timescale, err := findVideoTrack(mp4File)
	if err != nil {
		return nil, err
	}

	var frames []VideoFrame
	for _, seg := range mp4File.Segments {
		for _, frag := range seg.Fragments {
			if frag.Moof == nil {
				continue
			}

			for _, traf := range frag.Moof.Trafs {
				if traf.Tfhd.TrackID != videoTrackID {
					continue
				}

				var baseDecodeTime uint64
				if traf.Tfdt != nil {
					baseDecodeTime = traf.Tfdt.BaseMediaDecodeTime()
				}

				samples, err := frag.GetFullSamples(trex)
				if err != nil {
					return nil, fmt.Errorf("get samples: %w", err)
				}

				currentTime := baseDecodeTime
				for _, sample := range samples {
					img, err := jpeg.Decode(bytes.NewReader(sample.Data))
					if err != nil {
						return nil, fmt.Errorf("decode sample at %d: %w", currentTime, err)
					}

					frames = append(frames, VideoFrame{
						Image:       img,
						TimestampMs: int(currentTime * 1000 / uint64(timescale)),
						DurationMs:  int(uint64(sample.Dur) * 1000 / uint64(timescale)),
					})

					currentTime += uint64(sample.Dur)
				}
			}
		}
	}

	return frames, nil
}

// findVideoTrack locates the video track, its trex and timescale.
func findVideoTrack(mp4File *mp4.File) (uint32, *mp4.TrexBox, uint32, error) {
	if mp4File.Init == nil || mp4File.Init.Moov == nil {
		return 0, nil, 0, fmt.Errorf("no init segment found")
	}

	var videoTrackID uint32
	var timescale uint32 = 1000
	for _, trak := range mp4File.Init.Moov.Traks {
		if trak.Mdia != nil && trak.Mdia.Hdlr != nil && trak.Mdia.Hdlr.HandlerType == "vide" {
			videoTrackID = trak.Tkhd.TrackID
			if trak.Mdia.Mdhd != nil {
				timescale = trak.Mdia.Mdhd.Timescale
			}
			break
		}
	}
	if videoTrackID == 0 {
		return 0, nil, 0, fmt.Errorf("no video track found")
	}

	var trex *mp4.TrexBox
	if mp4File.Init.Moov.Mvex != nil {
		for _, t := range mp4File.Init.Moov.Mvex.Trexs {
			if t.TrackID == videoTrackID {
				trex = t
				break
			}
		}
	}

	return videoTrackID, trex, timescale, nil
}
