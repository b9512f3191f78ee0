package driver

import "time"

// Stage names a state of the pipeline.
type Stage string

const (
	StageIdle        Stage = "idle"
	StageAcquiring   Stage = "acquiring"
	StageDecoding    Stage = "decoding"
	StageEmpty       Stage = "empty"
	StageDecodeError Stage = "decode_error"
	StageGrouping    Stage = "grouping"
	StageRendering   Stage = "rendering"
	StageReporting   Stage = "reporting"
)

// StageStatus reports whether a stage started or finished.
type StageStatus int

const (
	StageStart StageStatus = iota
	StageEnd
)

// StageEvent describes a stage boundary.
type StageEvent struct {
	Stage   Stage
	Status  StageStatus
	Elapsed time.Duration
}

// StageObserver receives stage events emitted during Run.
type StageObserver func(StageEvent)
