package buff

// MaxSpecialistCharges is the number of crafter's delineations usable per
// craft.
const MaxSpecialistCharges = 3

// Specialist tracks crafter's delineation charges. NotSpecialist marks a
// character who cannot use specialist actions at all; zero means a
// specialist who has spent every charge.
type Specialist int8

// NotSpecialist is the charge state of a non-specialist character.
const NotSpecialist Specialist = -1

// NewSpecialist returns a full set of charges.
func NewSpecialist() Specialist { return MaxSpecialistCharges }

// Available reports whether a charge can be spent.
func (s Specialist) Available() bool { return s > 0 }

// Use spends one charge. Panics if none are available.
func (s Specialist) Use() Specialist {
	if s <= 0 {
		panic("buff: specialist charge spent with none available")
	}
	return s - 1
}

// HeartAndSoul lets one good-gated action fire off-condition, once per
// craft.
type HeartAndSoul uint8

const (
	// HeartAndSoulUnused means the buff has not been activated this craft.
	HeartAndSoulUnused HeartAndSoul = iota
	// HeartAndSoulActive means the next good-gated action may fire
	// regardless of condition.
	HeartAndSoulActive
	// HeartAndSoulSpent means the once-per-craft use is gone.
	HeartAndSoulSpent
)

// Active reports whether the override is waiting to be spent.
func (b HeartAndSoul) Active() bool { return b == HeartAndSoulActive }

// Activate arms the override. Panics unless the buff is unused.
func (b HeartAndSoul) Activate() HeartAndSoul {
	if b != HeartAndSoulUnused {
		panic("buff: Heart and Soul activated twice in one craft")
	}
	return HeartAndSoulActive
}

// Consume spends the override. Panics if it is not active.
func (b HeartAndSoul) Consume() HeartAndSoul {
	if b != HeartAndSoulActive {
		panic("buff: consume of inactive Heart and Soul")
	}
	return HeartAndSoulSpent
}
