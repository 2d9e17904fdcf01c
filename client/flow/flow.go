package flow

type GameMode int

const (
	GameModeMenu GameMode = iota
	GameModePlay
)

func (m GameMode) String() string {
	switch m {
	case GameModeMenu:
		return "Menu"
	case GameModePlay:
		return "Play"
	}
	return "Unknown"
}
