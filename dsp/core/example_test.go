package core_test

import (
	"fmt"

	"github.com/cwbudde/digitalfilters/dsp/core"
)

func ExampleApplyProcessorOptions() {
	cfg := core.ApplyProcessorOptions(
		core.WithSampleRate(44100),
		core.WithBlockSize(256),
	)

	fmt.Printf("sampleRate=%.0f blockSize=%d\n", cfg.SampleRate, cfg.BlockSize)
	fmt.Println(cfg.Blocks(600))

	// Output:
	// sampleRate=44100 blockSize=256
	// [[0 256] [256 512] [512 600]]
}
