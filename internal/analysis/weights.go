package analysis

// Weights holds every tuning constant of the scoring pipeline. The defaults
// are calibration values inherited from the original heuristics; treat them
// as configuration, not correctness requirements.
type Weights struct {
	Addition  float64
	Deletion  float64
	LineCount float64

	ControlFlow float64
	Function    float64
	TypeDecl    float64
	Nesting     float64

	TestMultiplier   float64
	ConfigMultiplier float64
	CoreMultiplier   float64
	DepthStep        float64

	// SplitThreshold is the minimum additions+deletions a package group needs
	// to count as significant for the cohesion verdict.
	SplitThreshold int
}

func DefaultWeights() Weights {
	return Weights{
		Addition:  1.5,
		Deletion:  1.0,
		LineCount: 0.1,

		ControlFlow: 3,
		Function:    2,
		TypeDecl:    4,
		Nesting:     2,

		TestMultiplier:   0.3,
		ConfigMultiplier: 0.5,
		CoreMultiplier:   1.5,
		DepthStep:        0.1,

		SplitThreshold: 10,
	}
}
