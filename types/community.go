package types

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/vocdoni/community-registry/crypto/babyjub"
	"github.com/vocdoni/community-registry/crypto/hash/poseidon"
)

// Default values of the optional community fields. A record built from a
// payload carrying only a uid holds exactly these values.
const (
	DefaultFullName    = "?"
	DefaultDescription = ""
)

// Community is the commitment record of a community: a fixed schema of typed
// fields that round-trips a plain JSON form and hashes into a single field
// element. Reference lists hold identifiers only; full rosters are kept out
// of the record so the commitment structure stays bounded.
type Community struct {
	UID         UID                `cbor:"0,keyasint"`
	AccountID   *babyjub.PublicKey `cbor:"1,keyasint"`
	FullName    BoundedText        `cbor:"2,keyasint"`
	Description BoundedText        `cbor:"3,keyasint"`
	State       CommunityState     `cbor:"4,keyasint"`
	CreatedUTC  UTCTime            `cbor:"5,keyasint"`
	UpdatedUTC  UTCTime            `cbor:"6,keyasint"`
	ApprovedUTC UTCTime            `cbor:"7,keyasint"`
	Admins      []UID              `cbor:"8,keyasint"`
	Validators  []UID              `cbor:"9,keyasint"`
	Auditors    []UID              `cbor:"10,keyasint"`
	Plans       []UID              `cbor:"11,keyasint"`
}

// communityWire is the plain JSON form of a community. Every value is a
// string; timestamps use the canonical UTC rendering and identifiers their
// decimal form.
type communityWire struct {
	UID         string   `json:"uid"`
	AccountID   string   `json:"accountId"`
	FullName    string   `json:"fullName"`
	Description string   `json:"description"`
	State       string   `json:"state"`
	CreatedUTC  string   `json:"createdUTC"`
	UpdatedUTC  string   `json:"updatedUTC"`
	ApprovedUTC string   `json:"approvedUTC"`
	Admins      []string `json:"admins"`
	Validators  []string `json:"validators"`
	Auditors    []string `json:"auditors"`
	Plans       []string `json:"plans"`
}

// CommunityFromJSON builds a community record from its plain JSON form.
// Optional fields that are absent or empty take their declared default; a
// malformed uid, accountId, timestamp or identifier list fails construction
// and no record is returned.
func CommunityFromJSON(data []byte) (*Community, error) {
	c := &Community{}
	if err := json.Unmarshal(data, c); err != nil {
		return nil, err
	}
	return c, nil
}

// UnmarshalJSON implements the json.Unmarshaler interface with the default
// substitution and coercion rules of CommunityFromJSON.
func (c *Community) UnmarshalJSON(data []byte) error {
	w := communityWire{}
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("malformed community JSON: %w", err)
	}
	uid, err := ParseUID(w.UID)
	if err != nil {
		return fmt.Errorf("community uid: %w", err)
	}
	c.UID = uid

	c.AccountID = babyjub.EmptyPublicKey()
	if w.AccountID != "" {
		if c.AccountID, err = babyjub.PublicKeyFromString(w.AccountID); err != nil {
			return fmt.Errorf("community accountId: %w", err)
		}
	}

	c.FullName = NewBoundedText(DefaultFullName)
	if w.FullName != "" {
		c.FullName = NewBoundedText(w.FullName)
	}
	c.Description = NewBoundedText(w.Description)
	c.State = StateInitial
	if w.State != "" {
		c.State = CommunityState(NewBoundedText(w.State))
	}

	c.CreatedUTC, c.UpdatedUTC, c.ApprovedUTC = 0, 0, 0
	if w.CreatedUTC != "" {
		if c.CreatedUTC, err = ParseUTCTime(w.CreatedUTC); err != nil {
			return fmt.Errorf("community createdUTC: %w", err)
		}
	}
	if w.UpdatedUTC != "" {
		if c.UpdatedUTC, err = ParseUTCTime(w.UpdatedUTC); err != nil {
			return fmt.Errorf("community updatedUTC: %w", err)
		}
	}
	if w.ApprovedUTC != "" {
		if c.ApprovedUTC, err = ParseUTCTime(w.ApprovedUTC); err != nil {
			return fmt.Errorf("community approvedUTC: %w", err)
		}
	}

	if c.Admins, err = ParseUIDList(w.Admins); err != nil {
		return fmt.Errorf("community admins: %w", err)
	}
	if c.Validators, err = ParseUIDList(w.Validators); err != nil {
		return fmt.Errorf("community validators: %w", err)
	}
	if c.Auditors, err = ParseUIDList(w.Auditors); err != nil {
		return fmt.Errorf("community auditors: %w", err)
	}
	if c.Plans, err = ParseUIDList(w.Plans); err != nil {
		return fmt.Errorf("community plans: %w", err)
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface, producing the plain
// JSON form. Re-parsing the output yields an equivalent record.
func (c *Community) MarshalJSON() ([]byte, error) {
	return json.Marshal(&communityWire{
		UID:         c.UID.String(),
		AccountID:   c.AccountID.String(),
		FullName:    c.FullName.String(),
		Description: c.Description.String(),
		State:       c.State.String(),
		CreatedUTC:  c.CreatedUTC.String(),
		UpdatedUTC:  c.UpdatedUTC.String(),
		ApprovedUTC: c.ApprovedUTC.String(),
		Admins:      uidStrings(c.Admins),
		Validators:  uidStrings(c.Validators),
		Auditors:    uidStrings(c.Auditors),
		Plans:       uidStrings(c.Plans),
	})
}

func (c *Community) String() string {
	data, err := json.Marshal(c)
	if err != nil {
		return ""
	}
	return string(data)
}

// Serialize flattens the record into an ordered sequence of field elements:
// uid, accountId, fullName, description, state, approvedUTC, createdUTC,
// updatedUTC, admins, validators, auditors, plans. Each reference list
// contributes its length followed by its entries, so adjacent lists cannot
// be confused with each other.
func (c *Community) Serialize() []*big.Int {
	fields := []*big.Int{c.UID.BigInt()}
	fields = append(fields, c.AccountID.Serialize()...)
	fields = append(fields, c.FullName.Serialize()...)
	fields = append(fields, c.Description.Serialize()...)
	fields = append(fields, BoundedText(c.State).Serialize()...)
	fields = append(fields, c.ApprovedUTC.BigInt(), c.CreatedUTC.BigInt(), c.UpdatedUTC.BigInt())
	for _, list := range [][]UID{c.Admins, c.Validators, c.Auditors, c.Plans} {
		fields = append(fields, big.NewInt(int64(len(list))))
		for _, uid := range list {
			fields = append(fields, uid.BigInt())
		}
	}
	return fields
}

// Hash computes the poseidon commitment of the record. It is a pure function
// of the field values: any change to any field, including the order of a
// reference list, yields a different digest.
func (c *Community) Hash() (*BigInt, error) {
	h, err := poseidon.MultiPoseidon(c.Serialize()...)
	if err != nil {
		return nil, fmt.Errorf("failed to hash community %s: %w", c.UID, err)
	}
	return (*BigInt)(h), nil
}

func uidStrings(uids []UID) []string {
	ss := make([]string, 0, len(uids))
	for _, u := range uids {
		ss = append(ss, u.String())
	}
	return ss
}
