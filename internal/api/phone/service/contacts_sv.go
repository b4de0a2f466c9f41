package phoneService

import (
	"strings"

	"SmartObjectAI/internal/api/phone"
	"SmartObjectAI/pkg/nlp"
)

func newContactDomain() *contactDomainImpl {
	return &contactDomainImpl{
		contacts: []nlp.Contact{
			{Name: "mummy", PhoneNumber: "9876543210"},
			{Name: "daddy", PhoneNumber: "9876543211"},
			{Name: "brother", PhoneNumber: "9876543212"},
			{Name: "sister", PhoneNumber: "9876543213"},
		},
	}
}

func (d *contactDomainImpl) List() []nlp.Contact {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]nlp.Contact, len(d.contacts))
	copy(out, d.contacts)
	return out
}

func (d *contactDomainImpl) Add(contact nlp.Contact) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	name := strings.ToLower(strings.TrimSpace(contact.Name))
	for _, existing := range d.contacts {
		if existing.Name == name {
			return phone.ErrContactAlreadyExists
		}
	}

	d.contacts = append(d.contacts, nlp.Contact{
		Name:        name,
		PhoneNumber: strings.TrimSpace(contact.PhoneNumber),
	})
	return nil
}

func (d *contactDomainImpl) Remove(name string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	name = strings.ToLower(strings.TrimSpace(name))
	for i, existing := range d.contacts {
		if existing.Name == name {
			d.contacts = append(d.contacts[:i], d.contacts[i+1:]...)
			return nil
		}
	}

	return phone.ErrContactNotFound
}
