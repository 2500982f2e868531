//go:build ci

package sound

// Cue names kept in sync with the real build.
const (
	CueEat    = "eat"
	CueHurt   = "hurt"
	CueCoin   = "coin"
	CueStatus = "status"
	CueEvent  = "event"
	CueDeath  = "death"
)

type SoundManager struct{}

func NewSoundManager() *SoundManager {
	return &SoundManager{}
}

func (sm *SoundManager) Init() error {
	return nil
}

func (sm *SoundManager) Play(name string) {
	// No-op
}

func (sm *SoundManager) PlayForDelta(hpDelta int) {
	// No-op
}

func (sm *SoundManager) Close() {
	// No-op
}
