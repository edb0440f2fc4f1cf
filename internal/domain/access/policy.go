package access

import (
	"pulseboard/internal/domain/organization"
	"pulseboard/internal/domain/ticket"
	"pulseboard/internal/shared/errors"
)

type Reason string

const (
	ReasonNone            Reason = ""
	ReasonUnauthenticated Reason = "unauthenticated"
	ReasonNotOwner        Reason = "not-owner"
	ReasonNotReporter     Reason = "not-reporter"
	ReasonQuotaExceeded   Reason = "quota-exceeded"
	ReasonNotFound        Reason = "not-found"
)

type Decision struct {
	Allowed bool
	Reason  Reason
}

func allow() Decision             { return Decision{Allowed: true} }
func deny(reason Reason) Decision { return Decision{Reason: reason} }

var reasonMessages = map[Reason]string{
	ReasonNotOwner:      "only the organization owner can do this",
	ReasonNotReporter:   "only the ticket reporter can do this",
	ReasonQuotaExceeded: "you already own an organization",
}

// Err maps a denial onto the error taxonomy and is nil when allowed.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	switch d.Reason {
	case ReasonUnauthenticated:
		return errors.NewUnauthorizedError("authentication required")
	case ReasonNotFound:
		return errors.NewNotFoundError("resource not found")
	}
	msg, ok := reasonMessages[d.Reason]
	if !ok {
		msg = "access forbidden"
	}
	return errors.NewForbiddenError(msg, string(d.Reason))
}

// CanCreateOrganization caps every user at one organization.
func CanCreateOrganization(c *Caller, ownedCount int64) Decision {
	if !c.Authenticated() {
		return deny(ReasonUnauthenticated)
	}
	if ownedCount > 0 {
		return deny(ReasonQuotaExceeded)
	}
	return allow()
}

// CanManageOrganization covers field edits, triage, summaries and digests.
func CanManageOrganization(c *Caller, org *organization.Organization) Decision {
	if !c.Authenticated() {
		return deny(ReasonUnauthenticated)
	}
	if org == nil {
		return deny(ReasonNotFound)
	}
	if !org.IsOwnedBy(c.ID) {
		return deny(ReasonNotOwner)
	}
	return allow()
}

func CanCreateTicket(c *Caller, org *organization.Organization) Decision {
	if !c.Authenticated() {
		return deny(ReasonUnauthenticated)
	}
	if org == nil {
		return deny(ReasonNotFound)
	}
	return allow()
}

// CanEditTicket covers content edits and deletion.
func CanEditTicket(c *Caller, t *ticket.Ticket) Decision {
	if !c.Authenticated() {
		return deny(ReasonUnauthenticated)
	}
	if t == nil {
		return deny(ReasonNotFound)
	}
	if !t.IsReportedBy(c.ID) {
		return deny(ReasonNotReporter)
	}
	return allow()
}

// CanChangeTicketStatus takes the organization the ticket belongs to.
func CanChangeTicketStatus(c *Caller, org *organization.Organization) Decision {
	return CanManageOrganization(c, org)
}

// CanVote places no ownership restriction, reporters may vote on their own tickets.
func CanVote(c *Caller) Decision {
	if !c.Authenticated() {
		return deny(ReasonUnauthenticated)
	}
	return allow()
}
