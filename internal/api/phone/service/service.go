package phoneService

import (
	phonePkg "SmartObjectAI/pkg/phone"
	"context"
	"sync"

	"SmartObjectAI/internal/api/phone"
	"SmartObjectAI/pkg/nlp"

	"github.com/sirupsen/logrus"
)

type PhoneService interface {
	Command() CommandDomain
	Contacts() ContactDomain
}

type CommandDomain interface {
	ProcessCommand(c context.Context, req phone.PhoneCommandRequest) (phone.PhoneCommandResponse, error)
	Status(c context.Context) phone.BridgeStatusResponse
	Connect(c context.Context, req phone.ConnectRequest) (phone.ConnectResponse, error)
	Disconnect(c context.Context) error
}

type ContactDomain interface {
	List() []nlp.Contact
	Add(contact nlp.Contact) error
	Remove(name string) error
}

type phoneService struct {
	commandDomain CommandDomain
	contactDomain ContactDomain
}

func (p *phoneService) Command() CommandDomain {
	return p.commandDomain
}

func (p *phoneService) Contacts() ContactDomain {
	return p.contactDomain
}

type commandDomainImpl struct {
	log       *logrus.Logger
	bridge    phonePkg.IBridge
	extractor *nlp.Extractor
	contacts  ContactDomain
}

// contactDomainImpl is the session-scoped contact registry. Order is
// preserved because intent resolution walks contacts in registry order.
type contactDomainImpl struct {
	mu       sync.RWMutex
	contacts []nlp.Contact
}

func New(log *logrus.Logger, bridge phonePkg.IBridge) PhoneService {
	contacts := newContactDomain()

	return &phoneService{
		commandDomain: &commandDomainImpl{
			log:       log,
			bridge:    bridge,
			extractor: nlp.NewExtractor(),
			contacts:  contacts,
		},
		contactDomain: contacts,
	}
}
