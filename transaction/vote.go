package transaction

import (
	"fmt"
	"strconv"
)

// VoteMsg casts a governance vote.
type VoteMsg struct {
	ProposalID int64
	Voter      string
	Option     int8
}

type voteDoc struct {
	Option     string `json:"option"`
	ProposalID string `json:"proposal_id"`
	Voter      string `json:"voter"`
}

// NewVote returns a vote message.
func NewVote(voter string, proposalID int64, option int8) VoteMsg {
	return VoteMsg{ProposalID: proposalID, Voter: voter, Option: option}
}

// Type implements Msg.
func (m VoteMsg) Type() string { return "vote" }

// ValidateBasic implements Msg.
func (m VoteMsg) ValidateBasic() error {
	if _, err := decodeAddress("voter", m.Voter); err != nil {
		return err
	}
	if m.ProposalID <= 0 {
		return fmt.Errorf("invalid proposal id %d", m.ProposalID)
	}
	if m.Option < VoteYes || m.Option > VoteNoWithVeto {
		return fmt.Errorf("invalid vote option %d", m.Option)
	}
	return nil
}

// SignDoc implements Msg. The proposal id is a string as all int64 values
// in the governance module are, the option is its name.
func (m VoteMsg) SignDoc() interface{} {
	return voteDoc{
		Option:     VoteOptionName(m.Option),
		ProposalID: strconv.FormatInt(m.ProposalID, 10),
		Voter:      m.Voter,
	}
}

// Encode implements Msg.
func (m VoteMsg) Encode() ([]byte, error) {
	voter, err := decodeAddress("voter", m.Voter)
	if err != nil {
		return nil, err
	}
	var e encoder
	e.int64(1, m.ProposalID)
	e.bytes(2, voter)
	e.int64(3, int64(m.Option))
	return withPrefix(prefixVote, e), nil
}
