package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// MaxHeroNameLength matches the width of the heroes.name column.
const MaxHeroNameLength = 100

var validate = validator.New()

// Hero is a persisted superhero record. APIID is the identifier assigned by
// the external hero directory; ID is the local surrogate key.
type Hero struct {
	ID           int64     `json:"-"`
	APIID        int       `json:"api_id"       validate:"gt=0"`
	Name         string    `json:"name"         validate:"required,max=100"`
	Intelligence int       `json:"intelligence" validate:"gte=0"`
	Strength     int       `json:"strength"     validate:"gte=0"`
	Speed        int       `json:"speed"        validate:"gte=0"`
	Power        int       `json:"power"        validate:"gte=0"`
	CreatedAt    time.Time `json:"-"`
}

// NewHero builds a validated hero record from the attributes reported by the
// external directory.
func NewHero(apiID int, name string, intelligence, strength, speed, power int) (*Hero, error) {
	hero := &Hero{
		APIID:        apiID,
		Name:         name,
		Intelligence: intelligence,
		Strength:     strength,
		Speed:        speed,
		Power:        power,
	}

	if err := hero.Validate(); err != nil {
		return nil, err
	}

	return hero, nil
}

// Validate checks the hero's fields. The returned error wraps ErrValidation
// and one of the specific hero validation errors.
func (h *Hero) Validate() error {
	err := validate.Struct(h)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %w: %v", ErrValidation, ErrInvalidHeroEntity, err)
	}

	first := verrs[0]
	var specific error
	switch first.Field() {
	case "Name":
		if first.Tag() == "max" {
			specific = ErrHeroNameTooLong
		} else {
			specific = ErrHeroNameEmpty
		}
	case "APIID":
		specific = ErrHeroAPIIDInvalid
	default:
		specific = ErrHeroStatNegative
	}

	return fmt.Errorf("%w: %w (%s)", ErrValidation, specific, first.Field())
}

// Stat returns the value of the given numeric attribute.
func (h *Hero) Stat(field Field) int {
	switch field {
	case FieldIntelligence:
		return h.Intelligence
	case FieldStrength:
		return h.Strength
	case FieldSpeed:
		return h.Speed
	case FieldPower:
		return h.Power
	default:
		return 0
	}
}
