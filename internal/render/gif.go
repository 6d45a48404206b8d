package render

import (
	"image"
	"image/color"
	"image/gif"
	"os"
)

// Recorder accumulates canvas frames and writes them out as an animated GIF.
type Recorder struct {
	frames    []*image.Paletted
	frameRate int
}

// NewRecorder creates a recorder. frameRate controls the per-frame delay in
// the output; values below 1 are treated as 30.
func NewRecorder(frameRate int) *Recorder {
	if frameRate < 1 {
		frameRate = 30
	}
	return &Recorder{frameRate: frameRate}
}

func (r *Recorder) FrameCount() int { return len(r.frames) }

// Capture rasterizes the canvas into a paletted frame. Each braille cell
// becomes an 8x16 pixel block, one 4x4 square per lit dot.
func (r *Recorder) Capture(c *Canvas) {
	const charW, charH = 8, 16
	imgW, imgH := c.Width*charW, c.Height*charH
	img := image.NewPaletted(image.Rect(0, 0, imgW, imgH), color.Palette{color.Black, color.White})
	for row := 0; row < c.Height; row++ {
		for col := 0; col < c.Width; col++ {
			pattern := c.Grid[row][col]
			if pattern <= 0x2800 {
				continue
			}
			dotW, dotH := charW/2, charH/4
			baseX, baseY := col*charW, row*charH
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if (pattern-0x2800)&dotBits[dy][dx] == 0 {
						continue
					}
					for py := 0; py < dotH; py++ {
						for px := 0; px < dotW; px++ {
							img.SetColorIndex(baseX+dx*dotW+px, baseY+dy*dotH+py, 1)
						}
					}
				}
			}
		}
	}
	r.frames = append(r.frames, img)
}

// WriteFile encodes the captured frames as a looping GIF.
func (r *Recorder) WriteFile(path string) error {
	if len(r.frames) == 0 {
		return nil
	}
	delay := 100 / r.frameRate // in hundredths of a second
	if delay < 1 {
		delay = 1
	}
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range r.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, delay)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gif.EncodeAll(f, &anim)
}
