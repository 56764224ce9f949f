package game

// EntityView is the render state of one falling word.
type EntityView struct {
	Text    string
	X       int
	Row     int
	Seed    int
	Powerup bool
}

// Snapshot is the read-only per-frame state handed to the presentation
// layer. The core never draws.
type Snapshot struct {
	Entities []EntityView

	Score           int
	Streak          int
	Combo           int
	Level           int
	BackgroundLevel int
	Tier            Tier

	FooterWord string
	PointFlash int
	LevelNote  string
	Alert      float64
	WordScale  int

	Frozen   bool
	Revealed bool
	Paused   bool
	Over     bool
}

// Snapshot captures the current session state for rendering.
func (s *Session) Snapshot() Snapshot {
	views := make([]EntityView, 0, len(s.words))
	for _, w := range s.words {
		views = append(views, EntityView{
			Text:    w.Display(),
			X:       w.X,
			Row:     int(w.Y),
			Seed:    w.Seed,
			Powerup: w.Kind != KindPlain,
		})
	}
	snap := Snapshot{
		Entities:        views,
		Score:           s.scoring.score,
		Streak:          s.scoring.streak,
		Combo:           s.scoring.combo,
		Level:           s.scoring.level,
		BackgroundLevel: s.bgLevel,
		Tier:            s.cfg.Tier,
		PointFlash:      s.pointFlash,
		LevelNote:       s.levelNote,
		Alert:           s.alert,
		WordScale:       s.params.WordScale,
		Frozen:          s.frozen,
		Revealed:        s.visible,
		Paused:          s.paused,
		Over:            s.over,
	}
	if s.footer != nil {
		snap.FooterWord = s.footer.display()
	}
	return snap
}
