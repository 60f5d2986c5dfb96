package studio

// SimState is the simulator's position in its lifecycle:
// idle → playing ⇄ paused → finished, with Reset returning to idle from any
// state.
type SimState string

const (
	SimIdle     SimState = "idle"
	SimPlaying  SimState = "playing"
	SimPaused   SimState = "paused"
	SimFinished SimState = "finished"
)

// StartSimulation begins a play-through of the draft's actions. Starting an
// empty draft is a no-op. Starting from paused resumes without resetting the
// cursor or clock; any other state starts fresh at step 0 with a zeroed
// clock. No wall-clock timers run: the caller drives every advance through
// StepSimulation.
func (d *Draft) StartSimulation() {
	if len(d.Actions) == 0 {
		return
	}
	if d.SimState == SimPaused {
		d.SimState = SimPlaying
		return
	}
	d.SimState = SimPlaying
	d.SimStep = 0
	d.SimTime = 0
}

// PauseSimulation pauses unconditionally; it does not check the current
// state.
func (d *Draft) PauseSimulation() {
	d.SimState = SimPaused
}

// StepSimulation advances the cursor by one, adding the estimated duration
// of the action at the pre-advance step to the simulated clock. A step taken
// while the cursor already sits on the last action finishes the simulation
// without advancing or adding time.
func (d *Draft) StepSimulation() {
	if d.SimStep < len(d.Actions)-1 {
		d.SimTime += EstimateSeconds(d.Actions[d.SimStep].WireAction)
		d.SimStep++
		return
	}
	d.SimState = SimFinished
}

// ResetSimulation returns the simulator to idle with a zeroed cursor and
// clock, from any state.
func (d *Draft) ResetSimulation() {
	d.SimState = SimIdle
	d.SimStep = 0
	d.SimTime = 0
}

// SimulationStep is one row of a computed simulation timeline.
type SimulationStep struct {
	Index     int        `json:"index"`
	Type      ActionType `json:"action_type"`
	Seconds   int        `json:"seconds"`
	StartsAt  int        `json:"starts_at"` // simulated seconds from flow start
	Valid     bool       `json:"is_valid"`
	Errors    []string   `json:"validation_errors,omitempty"`
}

// Timeline walks the whole draft without touching simulator state and
// returns the per-step schedule the simulator would produce.
func (d *Draft) Timeline() []SimulationStep {
	steps := make([]SimulationStep, len(d.Actions))
	at := 0
	for i := range d.Actions {
		secs := EstimateSeconds(d.Actions[i].WireAction)
		steps[i] = SimulationStep{
			Index:    i,
			Type:     d.Actions[i].Type,
			Seconds:  secs,
			StartsAt: at,
			Valid:    d.Actions[i].Valid,
			Errors:   d.Actions[i].Errors,
		}
		at += secs
	}
	return steps
}
