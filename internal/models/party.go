// internal/models/party.go
package models

import (
	"fmt"

	"github.com/google/uuid"
)

type PartyKind string

const (
	PartyKindManufacturer           PartyKind = "manufacturer"
	PartyKindRetailNetwork          PartyKind = "retail_network"
	PartyKindIndividualEntrepreneur PartyKind = "individual_entrepreneur"
)

func (k PartyKind) Valid() bool {
	switch k {
	case PartyKindManufacturer, PartyKindRetailNetwork, PartyKindIndividualEntrepreneur:
		return true
	}
	return false
}

// PartyRef names exactly one party of one kind. The zero value refers to nothing.
type PartyRef struct {
	Kind PartyKind `json:"kind" validate:"required,party_kind"`
	ID   uuid.UUID `json:"id" validate:"required"`
}

func ManufacturerRef(id uuid.UUID) PartyRef {
	return PartyRef{Kind: PartyKindManufacturer, ID: id}
}

func RetailNetworkRef(id uuid.UUID) PartyRef {
	return PartyRef{Kind: PartyKindRetailNetwork, ID: id}
}

func IndividualEntrepreneurRef(id uuid.UUID) PartyRef {
	return PartyRef{Kind: PartyKindIndividualEntrepreneur, ID: id}
}

func (r PartyRef) IsZero() bool {
	return r.Kind == "" || r.ID == uuid.Nil
}

func (r PartyRef) String() string {
	return fmt.Sprintf("%s:%s", r.Kind, r.ID)
}

// PartyFromFields builds a reference from the three nullable role columns used
// on the wire and in storage. ok is false unless exactly one field is set.
func PartyFromFields(manufacturerID, retailNetworkID, entrepreneurID *uuid.UUID) (ref PartyRef, ok bool) {
	set := 0
	if manufacturerID != nil {
		set++
		ref = ManufacturerRef(*manufacturerID)
	}
	if retailNetworkID != nil {
		set++
		ref = RetailNetworkRef(*retailNetworkID)
	}
	if entrepreneurID != nil {
		set++
		ref = IndividualEntrepreneurRef(*entrepreneurID)
	}
	if set != 1 {
		return PartyRef{}, false
	}
	return ref, true
}

// Fields is the inverse of PartyFromFields: exactly the matching column is non-nil.
func (r PartyRef) Fields() (manufacturerID, retailNetworkID, entrepreneurID *uuid.UUID) {
	if r.IsZero() {
		return nil, nil, nil
	}
	id := r.ID
	switch r.Kind {
	case PartyKindManufacturer:
		manufacturerID = &id
	case PartyKindRetailNetwork:
		retailNetworkID = &id
	case PartyKindIndividualEntrepreneur:
		entrepreneurID = &id
	}
	return
}

// Participant is implemented by every entity that can sit in the supply chain.
type Participant interface {
	Ref() PartyRef
	Tier() int
	Supplier() *PartyRef
	DisplayName() string
	OwnedBy() uuid.UUID
}

// PartySummary is the read-side rendering of a party reference.
type PartySummary struct {
	Kind PartyKind  `json:"kind,omitempty"`
	ID   *uuid.UUID `json:"id,omitempty"`
	Name string     `json:"name"`
}

const (
	UnknownSeller = "Unknown Seller"
	UnknownBuyer  = "Unknown Buyer"
)

func SummaryOf(p Participant) *PartySummary {
	if p == nil {
		return nil
	}
	ref := p.Ref()
	return &PartySummary{Kind: ref.Kind, ID: &ref.ID, Name: p.DisplayName()}
}
