package types

import (
	"encoding/json"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/vocdoni/community-registry/crypto/babyjub"
)

func TestCommunityDefaults(t *testing.T) {
	c := qt.New(t)

	comm, err := CommunityFromJSON([]byte(`{"uid":"1"}`))
	c.Assert(err, qt.IsNil)

	c.Assert(comm.UID.String(), qt.Equals, "1")
	c.Assert(comm.AccountID.IsEmpty(), qt.IsTrue)
	c.Assert(comm.FullName.String(), qt.Equals, DefaultFullName)
	c.Assert(comm.Description.String(), qt.Equals, DefaultDescription)
	c.Assert(comm.State, qt.Equals, StateInitial)
	c.Assert(comm.CreatedUTC, qt.Equals, UTCTime(0))
	c.Assert(comm.UpdatedUTC, qt.Equals, UTCTime(0))
	c.Assert(comm.ApprovedUTC, qt.Equals, UTCTime(0))
	c.Assert(comm.Admins, qt.HasLen, 0)
	c.Assert(comm.Validators, qt.HasLen, 0)
	c.Assert(comm.Auditors, qt.HasLen, 0)
	c.Assert(comm.Plans, qt.HasLen, 0)

	// the JSON form renders every default explicitly
	var wire map[string]any
	c.Assert(json.Unmarshal([]byte(comm.String()), &wire), qt.IsNil)
	c.Assert(wire["uid"], qt.Equals, "1")
	c.Assert(wire["accountId"], qt.Equals, babyjub.EmptyPublicKey().String())
	c.Assert(wire["fullName"], qt.Equals, "?")
	c.Assert(wire["description"], qt.Equals, "")
	c.Assert(wire["state"], qt.Equals, "INITIAL")
	c.Assert(wire["createdUTC"], qt.Equals, "1970-01-01T00:00:00.000Z")
	c.Assert(wire["admins"], qt.HasLen, 0)
}

func TestCommunityRoundTrip(t *testing.T) {
	c := qt.New(t)

	_, pub := babyjub.GenerateKey()
	input := `{
		"uid": "12345",
		"accountId": "` + pub.String() + `",
		"fullName": "Open Builders",
		"description": "a community of builders",
		"state": "APPROVED",
		"createdUTC": "2024-06-01T10:20:30.500Z",
		"updatedUTC": "2024-07-01T00:00:00.000Z",
		"approvedUTC": "2024-08-01T00:00:00.000Z",
		"admins": ["2","3"],
		"validators": ["4"],
		"auditors": [],
		"plans": ["5","6","7"]
	}`

	comm, err := CommunityFromJSON([]byte(input))
	c.Assert(err, qt.IsNil)
	c.Assert(comm.AccountID.Equal(pub), qt.IsTrue)
	c.Assert(comm.Admins, qt.DeepEquals, []UID{"2", "3"})
	c.Assert(comm.UpdatedUTC.String(), qt.Equals, "2024-07-01T00:00:00.000Z")

	data, err := json.Marshal(comm)
	c.Assert(err, qt.IsNil)
	again, err := CommunityFromJSON(data)
	c.Assert(err, qt.IsNil)
	c.Assert(again.String(), qt.Equals, comm.String())

	// equivalent records hash to the same commitment
	h1, err := comm.Hash()
	c.Assert(err, qt.IsNil)
	h2, err := again.Hash()
	c.Assert(err, qt.IsNil)
	c.Assert(h1.Equal(h2), qt.IsTrue)
}

func TestCommunityTruncation(t *testing.T) {
	c := qt.New(t)

	long := strings.Repeat("x", MaxTextLen+100)
	comm, err := CommunityFromJSON([]byte(`{"uid":"1","fullName":"` + long + `"}`))
	c.Assert(err, qt.IsNil)
	c.Assert(comm.FullName.String(), qt.Equals, long[:MaxTextLen])

	// the round-tripped value equals the truncated prefix
	data, err := json.Marshal(comm)
	c.Assert(err, qt.IsNil)
	again, err := CommunityFromJSON(data)
	c.Assert(err, qt.IsNil)
	c.Assert(again.FullName, qt.Equals, comm.FullName)

	// a multi-byte rune at the truncation boundary round-trips too, with a
	// stable commitment
	multibyte := strings.Repeat("x", MaxTextLen-1) + "é"
	comm, err = CommunityFromJSON([]byte(`{"uid":"1","fullName":"` + multibyte + `"}`))
	c.Assert(err, qt.IsNil)
	c.Assert(comm.FullName.String(), qt.Equals, strings.Repeat("x", MaxTextLen-1))
	data, err = json.Marshal(comm)
	c.Assert(err, qt.IsNil)
	again, err = CommunityFromJSON(data)
	c.Assert(err, qt.IsNil)
	c.Assert(again.FullName, qt.Equals, comm.FullName)
	h1, err := comm.Hash()
	c.Assert(err, qt.IsNil)
	h2, err := again.Hash()
	c.Assert(err, qt.IsNil)
	c.Assert(h1.Equal(h2), qt.IsTrue)
}

func TestCommunityHashSensitivity(t *testing.T) {
	c := qt.New(t)

	base := `{"uid":"1","admins":["2","3"]}`
	comm, err := CommunityFromJSON([]byte(base))
	c.Assert(err, qt.IsNil)
	baseHash, err := comm.Hash()
	c.Assert(err, qt.IsNil)

	// same JSON, same hash
	same, err := CommunityFromJSON([]byte(base))
	c.Assert(err, qt.IsNil)
	sameHash, err := same.Hash()
	c.Assert(err, qt.IsNil)
	c.Assert(sameHash.Equal(baseHash), qt.IsTrue)

	// reordering a list changes the hash
	reversed, err := CommunityFromJSON([]byte(`{"uid":"1","admins":["3","2"]}`))
	c.Assert(err, qt.IsNil)
	reversedHash, err := reversed.Hash()
	c.Assert(err, qt.IsNil)
	c.Assert(reversedHash.Equal(baseHash), qt.IsFalse)

	// moving an entry to the adjacent list changes the hash
	moved, err := CommunityFromJSON([]byte(`{"uid":"1","admins":["2"],"validators":["3"]}`))
	c.Assert(err, qt.IsNil)
	movedHash, err := moved.Hash()
	c.Assert(err, qt.IsNil)
	c.Assert(movedHash.Equal(baseHash), qt.IsFalse)

	// changing a scalar field changes the hash
	renamed, err := CommunityFromJSON([]byte(`{"uid":"1","admins":["2","3"],"fullName":"other"}`))
	c.Assert(err, qt.IsNil)
	renamedHash, err := renamed.Hash()
	c.Assert(err, qt.IsNil)
	c.Assert(renamedHash.Equal(baseHash), qt.IsFalse)
}

func TestCommunityMalformedInput(t *testing.T) {
	c := qt.New(t)

	for _, input := range []string{
		`{}`,                                    // missing uid
		`{"uid":""}`,                            // empty uid
		`{"uid":"abc"}`,                         // non-decimal uid
		`{"uid":"1","accountId":"not-base58"}`,  // malformed key
		`{"uid":"1","accountId":"0"}`,           // too short for a key
		`{"uid":"1","admins":["2","x"]}`,        // malformed list entry
		`{"uid":"1","createdUTC":"yesterday"}`,  // malformed timestamp
		`{"uid":"1","updatedUTC":"not-a-date"}`, // malformed timestamp
	} {
		_, err := CommunityFromJSON([]byte(input))
		c.Assert(err, qt.IsNotNil, qt.Commentf("input: %s", input))
	}
}

func TestCommunitySerializeLayout(t *testing.T) {
	c := qt.New(t)

	comm, err := CommunityFromJSON([]byte(`{"uid":"1"}`))
	c.Assert(err, qt.IsNil)

	// 1 uid + 2 key coords + 3 text fields of fixed limbs + 3 timestamps +
	// 4 empty lists contributing a length element each
	expected := 1 + 2 + 3*TextFieldLimbs + 3 + 4
	c.Assert(comm.Serialize(), qt.HasLen, expected)

	withRefs, err := CommunityFromJSON([]byte(`{"uid":"1","plans":["9","8"]}`))
	c.Assert(err, qt.IsNil)
	c.Assert(withRefs.Serialize(), qt.HasLen, expected+2)
}
