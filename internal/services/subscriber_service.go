package services

import (
	"errors"

	"github.com/google/uuid"

	"github.com/PePetrov96/epicbyte/internal/domain"
	"github.com/PePetrov96/epicbyte/internal/forms"
	"github.com/PePetrov96/epicbyte/internal/i18n"
	"github.com/PePetrov96/epicbyte/internal/repos"
)

var ErrEmailTaken = errors.New("email already subscribed")

type SubscriberService struct {
	Subscribers *repos.SubscriberRepo
}

func NewSubscriberService(subs *repos.SubscriberRepo) *SubscriberService {
	return &SubscriberService{Subscribers: subs}
}

// Subscribe registers a newsletter email. The email is unique: the lookup
// must come back empty before the insert happens.
func (s *SubscriberService) Subscribe(email, locale string) (map[string]string, error) {
	form := forms.SubscribeForm{Email: email}
	fieldErrs := forms.Check(form, locale)
	if len(fieldErrs) > 0 {
		return fieldErrs, nil
	}

	taken, err := s.Subscribers.EmailTaken(email)
	if err != nil {
		return nil, err
	}
	if taken {
		return map[string]string{"email": i18n.Resolve("error.email.taken", locale)}, ErrEmailTaken
	}

	return nil, s.Subscribers.Create(&domain.Subscriber{ID: uuid.NewString(), Email: email})
}
