package timing

import "time"

const (
	// minDT is what DT returns before the first frame ends, since imgui
	// requires a delta time larger than zero
	minDT float32 = 1.0 / 1000

	fpsSampleWindow = time.Second
)

var (
	startTime      time.Time
	frameStartTime time.Time
	dt             float32 = minDT

	framesInWindow int
	fpsWindowStart time.Time
	avgFps         float32

	nowFunc = time.Now
)

// Init resets all timing state. ElapsedTime is measured from this call
func Init() {

	now := nowFunc()

	startTime = now
	frameStartTime = now
	fpsWindowStart = now

	dt = minDT
	framesInWindow = 0
	avgFps = 0
}

func FrameStarted() {
	frameStartTime = nowFunc()
}

func FrameEnded() {

	now := nowFunc()

	dt = float32(now.Sub(frameStartTime).Seconds())
	if dt < minDT {
		dt = minDT
	}

	framesInWindow++
	if windowLen := now.Sub(fpsWindowStart); windowLen >= fpsSampleWindow {
		avgFps = float32(float64(framesInWindow) / windowLen.Seconds())
		framesInWindow = 0
		fpsWindowStart = now
	}
}

// DT returns the duration of the last frame in seconds
func DT() float32 {
	return dt
}

// ElapsedTime returns the seconds passed since Init
func ElapsedTime() float64 {
	return nowFunc().Sub(startTime).Seconds()
}

// GetAvgFPS returns the frames per second averaged over the last full second
func GetAvgFPS() float32 {
	return avgFps
}
