package engine

// Player starting stats and per-level gains.
const (
	BaseHP      = 100
	BaseAttack  = 10
	BaseDefense = 5

	StartingGold     = 50
	StartingXPToNext = 100

	LevelUpHPGain      = 20
	LevelUpAttackGain  = 3
	LevelUpDefenseGain = 2

	xpCurveFactor = 1.5
)

// Stats is the combat core shared by the player and enemies. HP always
// stays within [0, MaxHP].
type Stats struct {
	Name    string
	HP      int
	MaxHP   int
	Attack  int
	Defense int
}

func (s *Stats) Alive() bool { return s.HP > 0 }

// ApplyDamage subtracts HP, clamped at zero. Returns the HP actually lost.
func (s *Stats) ApplyDamage(amount int) int {
	if amount < 0 {
		amount = 0
	}
	before := s.HP
	s.HP -= amount
	if s.HP < 0 {
		s.HP = 0
	}
	return before - s.HP
}

// Heal restores HP, clamped at MaxHP. Returns the HP actually restored.
func (s *Stats) Heal(amount int) int {
	if amount < 0 {
		amount = 0
	}
	before := s.HP
	s.HP += amount
	if s.HP > s.MaxHP {
		s.HP = s.MaxHP
	}
	return s.HP - before
}

type Player struct {
	Stats
	Level    int
	XP       int
	XPToNext int
	Gold     int
}

func NewPlayer(name string) *Player {
	return &Player{
		Stats: Stats{
			Name:    name,
			HP:      BaseHP,
			MaxHP:   BaseHP,
			Attack:  BaseAttack,
			Defense: BaseDefense,
		},
		Level:    1,
		XPToNext: StartingXPToNext,
		Gold:     StartingGold,
	}
}

// GainXP adds experience and resolves every level-up it pays for, so a
// single large award can raise several levels. Returns the number of
// levels gained.
func (p *Player) GainXP(amount int) int {
	if amount < 0 {
		amount = 0
	}
	p.XP += amount
	levels := 0
	for p.XP >= p.XPToNext {
		p.levelUp()
		levels++
	}
	return levels
}

// levelUp carries surplus XP into the next level and raises the threshold
// on the 1.5x curve, truncated. HP is fully restored.
func (p *Player) levelUp() {
	p.Level++
	p.XP -= p.XPToNext
	p.XPToNext = int(float64(p.XPToNext) * xpCurveFactor)
	p.MaxHP += LevelUpHPGain
	p.Attack += LevelUpAttackGain
	p.Defense += LevelUpDefenseGain
	p.HP = p.MaxHP
}

func (p *Player) GainGold(amount int) {
	if amount > 0 {
		p.Gold += amount
	}
}

// SpendGold deducts the amount and reports success. The purse is untouched
// when it cannot cover the cost.
func (p *Player) SpendGold(amount int) bool {
	if amount > p.Gold {
		return false
	}
	p.Gold -= amount
	return true
}
