// Package query composes visitor contact requests for the support team.
//
// The core obligation is the structured field set; transport is either a
// mailto link opened by the visitor's own client or an SMTP send from
// the server, whichever is configured.
package query

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// Request is one visitor's contact query.
type Request struct {
	Name        string `json:"name"`
	Contact     string `json:"contact"`
	Email       string `json:"email,omitempty"`
	TravelDate  string `json:"travelDate,omitempty"`
	Address     string `json:"address,omitempty"`
	Destination string `json:"destination"`
}

// Validate checks the required fields.
func (r Request) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if strings.TrimSpace(r.Contact) == "" && strings.TrimSpace(r.Email) == "" {
		return fmt.Errorf("a contact number or email is required")
	}
	if strings.TrimSpace(r.Destination) == "" {
		return fmt.Errorf("destination is required")
	}
	return nil
}

// Ticket is a composed query ready for transport.
type Ticket struct {
	Reference string
	Subject   string
	Body      string
}

// Compose validates the request and builds the support ticket. The
// reference ID lets support correlate follow-ups.
func Compose(r Request) (Ticket, error) {
	if err := r.Validate(); err != nil {
		return Ticket{}, err
	}

	ref := uuid.NewString()[:8]

	var b strings.Builder
	fmt.Fprintf(&b, "New Visa Query Request [%s]\n", ref)
	fmt.Fprintf(&b, "----------------------\n")
	fmt.Fprintf(&b, "Name: %s\n", r.Name)
	fmt.Fprintf(&b, "Contact: %s\n", r.Contact)
	if r.Email != "" {
		fmt.Fprintf(&b, "Email: %s\n", r.Email)
	}
	if r.TravelDate != "" {
		fmt.Fprintf(&b, "Target Travel Date: %s\n", r.TravelDate)
	}
	if r.Address != "" {
		fmt.Fprintf(&b, "Address: %s\n", r.Address)
	}
	fmt.Fprintf(&b, "Destination: %s\n", r.Destination)

	return Ticket{
		Reference: ref,
		Subject:   fmt.Sprintf("Visa Query from %s [%s]", r.Name, ref),
		Body:      b.String(),
	}, nil
}

// MailtoURL builds the mailto link for a composed ticket.
func MailtoURL(supportAddress string, t Ticket) string {
	params := url.Values{}
	params.Set("subject", t.Subject)
	params.Set("body", t.Body)
	// mailto expects %20, not '+', for spaces.
	encoded := strings.ReplaceAll(params.Encode(), "+", "%20")
	return "mailto:" + supportAddress + "?" + encoded
}
