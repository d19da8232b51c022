// Copyright (c) 2025 Craftlink
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package verify defines the verification-request records exchanged with the
// Craftlink backend and the reviewer decision applied to them.
package verify

import (
	"encoding/json"
	"strings"
)

// Reviewer decision values accepted by the backend.
const (
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

// Document is one optional uploaded-document slot. A slot the applicant never
// filled decodes from JSON null (or an absent field) as not provided, which is
// distinct from a provided document with an empty URL.
type Document struct {
	URL      string
	Provided bool
}

// UnmarshalJSON decodes a nullable string document reference.
func (d *Document) UnmarshalJSON(b []byte) error {
	var s *string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == nil {
		*d = Document{}
		return nil
	}
	*d = Document{URL: *s, Provided: true}
	return nil
}

// MarshalJSON encodes the slot back to a nullable string.
func (d Document) MarshalJSON() ([]byte, error) {
	if !d.Provided {
		return []byte("null"), nil
	}
	return json.Marshal(d.URL)
}

// VerificationInfo holds the uploaded document slots. Client applicants fill
// only the ID sides; engineer applicants additionally upload their
// professional certificates.
type VerificationInfo struct {
	FrontID        Document `json:"frontId"`
	BackID         Document `json:"backId"`
	MilitaryCert   Document `json:"militaryCert,omitempty"`
	GraduationCert Document `json:"graduationCert,omitempty"`
	UnionCard      Document `json:"unionCard,omitempty"`
}

// Applicant is the embedded account the verification documents belong to.
type Applicant struct {
	VerificationInfo VerificationInfo `json:"verificationInfo"`
}

// Request is a pending verification request as the backend returns it.
// Exactly one of Client or Engineer is set, matching the applicant type.
type Request struct {
	ID        string     `json:"_id"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Email     string     `json:"email"`
	Client    *Applicant `json:"clientId,omitempty"`
	Engineer  *Applicant `json:"engineerId,omitempty"`
	Status    string     `json:"status,omitempty"`
	Remarks   *string    `json:"remarks,omitempty"`
}

// Type returns the applicant type of the request.
func (r Request) Type() string {
	if r.Engineer != nil {
		return "Engineer"
	}
	return "Client"
}

// FullName joins the applicant's name parts.
func (r Request) FullName() string {
	return strings.TrimSpace(r.FirstName + " " + r.LastName)
}

// LabeledDocument pairs a document slot with its display label.
type LabeledDocument struct {
	Label string
	Doc   Document
}

// Documents returns the request's document slots in display order. Client
// requests carry the two ID sides; engineer requests add the certificates.
func (r Request) Documents() []LabeledDocument {
	switch {
	case r.Engineer != nil:
		info := r.Engineer.VerificationInfo
		return []LabeledDocument{
			{Label: "Front ID", Doc: info.FrontID},
			{Label: "Back ID", Doc: info.BackID},
			{Label: "Military Certificate", Doc: info.MilitaryCert},
			{Label: "Graduation Certificate", Doc: info.GraduationCert},
			{Label: "Union Card", Doc: info.UnionCard},
		}
	case r.Client != nil:
		info := r.Client.VerificationInfo
		return []LabeledDocument{
			{Label: "Front ID", Doc: info.FrontID},
			{Label: "Back ID", Doc: info.BackID},
		}
	default:
		return nil
	}
}

// Decision is the reviewer's verdict on a request. Remarks is nullable; an
// empty remarks box is submitted as JSON null, not as an empty string.
type Decision struct {
	Status  string  `json:"status"`
	Remarks *string `json:"remarks"`
}

// NewDecision builds a Decision, mapping empty remarks to null.
func NewDecision(status, remarks string) Decision {
	d := Decision{Status: status}
	if remarks != "" {
		d.Remarks = &remarks
	}
	return d
}

// Summary aggregates pending request counts for the dashboard.
type Summary struct {
	PendingClients   int
	PendingEngineers int
}

// Total returns the combined pending count.
func (s Summary) Total() int {
	return s.PendingClients + s.PendingEngineers
}
