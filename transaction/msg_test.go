package transaction

import (
	"encoding/hex"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wally-yu/binance-dex/crypto"
)

const testOrderID = "19AE2A31ACAA58D913274180C4B1E46214F92FEE-4"

func TestMsgEncode(t *testing.T) {
	order, err := NewOrder(testFrom, 3, "NNB-338_BNB", SideBuy, 150000000, 200000000, TimeInForceGTE)
	require.NoError(t, err)
	require.Equal(t, testOrderID, order.ID)

	testCases := []struct {
		name    string
		msg     Msg
		typ     string
		encoded string
		doc     string
	}{
		{
			name: "send",
			msg: NewSendMsg(testFrom, Transfer{
				To:    testTo,
				Coins: Coins{{Denom: "BNB", Amount: 100000000}},
			}),
			typ: "send",
			encoded: "2a2c87fa0a220a1419ae2a31acaa58d913274180c4b1e46214f92fee120a0a03424e421080c2d72f" +
				"12220a148f64d14af8c0a48f6efa7ef0f6d5b005e4a03cd0120a0a03424e421080c2d72f",
			doc: `{"inputs":[{"address":"` + testFrom + `","coins":[{"amount":100000000,"denom":"BNB"}]}],` +
				`"outputs":[{"address":"` + testTo + `","coins":[{"amount":100000000,"denom":"BNB"}]}]}`,
		},
		{
			name: "new order",
			msg:  order,
			typ:  "orderNew",
			encoded: "ce6dc0430a1419ae2a31acaa58d913274180c4b1e46214f92fee122a3139414532413331414341413538" +
				"44393133323734313830433442314534363231344639324645452d341a0b4e4e422d3333385f424e42200228013080a3c347388084af5f4001",
			doc: `{"id":"` + testOrderID + `","ordertype":2,"price":150000000,"quantity":200000000,` +
				`"sender":"` + testFrom + `","side":1,"symbol":"NNB-338_BNB","timeinforce":1}`,
		},
		{
			name:    "cancel order",
			msg:     NewCancelOrder(testFrom, "NNB-338_BNB", "ABC-1"),
			typ:     "orderCancel",
			encoded: "166e681b0a1419ae2a31acaa58d913274180c4b1e46214f92fee120b4e4e422d3333385f424e421a054142432d31",
			doc:     `{"refid":"ABC-1","sender":"` + testFrom + `","symbol":"NNB-338_BNB"}`,
		},
		{
			name:    "freeze",
			msg:     NewFreeze(testFrom, "BNB", 5000),
			typ:     "tokensFreeze",
			encoded: "e774b32d0a1419ae2a31acaa58d913274180c4b1e46214f92fee1203424e42188827",
			doc:     `{"amount":5000,"from":"` + testFrom + `","symbol":"BNB"}`,
		},
		{
			name:    "unfreeze",
			msg:     NewUnfreeze(testFrom, "BNB", 5000),
			typ:     "tokensUnfreeze",
			encoded: "6515ff0d0a1419ae2a31acaa58d913274180c4b1e46214f92fee1203424e42188827",
			doc:     `{"amount":5000,"from":"` + testFrom + `","symbol":"BNB"}`,
		},
		{
			name:    "vote",
			msg:     NewVote(testFrom, 7, VoteYes),
			typ:     "vote",
			encoded: "a1cadd360807121419ae2a31acaa58d913274180c4b1e46214f92fee1801",
			doc:     `{"option":"Yes","proposal_id":"7","voter":"` + testFrom + `"}`,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.NoError(t, tc.msg.ValidateBasic())
			require.Equal(t, tc.typ, tc.msg.Type())

			b, err := tc.msg.Encode()
			require.NoError(t, err)
			require.Equal(t, tc.encoded, hex.EncodeToString(b))

			doc, err := json.Marshal(tc.msg.SignDoc())
			require.NoError(t, err)
			require.Equal(t, tc.doc, string(doc))
		})
	}
}

func TestMsgValidateBasic(t *testing.T) {
	testCases := []struct {
		name string
		msg  Msg
	}{
		{"send without outputs", SendMsg{Inputs: []Input{{Address: testFrom, Coins: Coins{{Denom: "BNB", Amount: 1}}}}}},
		{"send unbalanced", SendMsg{
			Inputs:  []Input{{Address: testFrom, Coins: Coins{{Denom: "BNB", Amount: 2}}}},
			Outputs: []Output{{Address: testTo, Coins: Coins{{Denom: "BNB", Amount: 1}}}},
		}},
		{"send zero amount", NewSendMsg(testFrom, Transfer{To: testTo, Coins: Coins{{Denom: "BNB"}}})},
		{"send unsorted coins", SendMsg{
			Inputs:  []Input{{Address: testFrom, Coins: Coins{{Denom: "XYZ", Amount: 1}, {Denom: "BNB", Amount: 1}}}},
			Outputs: []Output{{Address: testTo, Coins: Coins{{Denom: "XYZ", Amount: 1}, {Denom: "BNB", Amount: 1}}}},
		}},
		{"send bad address", NewSendMsg(testFrom, Transfer{To: "bnb1xyz", Coins: Coins{{Denom: "BNB", Amount: 1}}})},
		{"order no symbol", NewOrderMsg{ID: "x", Sender: testFrom, OrderType: OrderTypeLimit, Side: SideBuy, TimeInForce: TimeInForceGTE, Price: 1, Quantity: 1}},
		{"order bad side", NewOrderMsg{ID: "x", Sender: testFrom, Symbol: "A_B", OrderType: OrderTypeLimit, Side: 3, TimeInForce: TimeInForceGTE, Price: 1, Quantity: 1}},
		{"order bad tif", NewOrderMsg{ID: "x", Sender: testFrom, Symbol: "A_B", OrderType: OrderTypeLimit, Side: SideSell, TimeInForce: 2, Price: 1, Quantity: 1}},
		{"order zero price", NewOrderMsg{ID: "x", Sender: testFrom, Symbol: "A_B", OrderType: OrderTypeLimit, Side: SideSell, TimeInForce: TimeInForceIOC, Quantity: 1}},
		{"cancel no ref", NewCancelOrder(testFrom, "A_B", "")},
		{"freeze negative", NewFreeze(testFrom, "BNB", -1)},
		{"unfreeze no symbol", NewUnfreeze(testFrom, "", 1)},
		{"vote bad option", NewVote(testFrom, 1, 9)},
		{"vote bad voter", NewVote("tbnb1", 1, VoteNo)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Error(t, tc.msg.ValidateBasic())
		})
	}
}

func TestNewSendMsgMultipleRecipients(t *testing.T) {
	msg := NewSendMsg(testFrom,
		Transfer{To: testTo, Coins: Coins{{Denom: "XYZ-000", Amount: 5}, {Denom: "BNB", Amount: 1}}},
		Transfer{To: testTo, Coins: Coins{{Denom: "BNB", Amount: 2}}},
	)
	require.NoError(t, msg.ValidateBasic())
	require.Len(t, msg.Inputs, 1)
	require.Equal(t, Coins{{Denom: "BNB", Amount: 3}, {Denom: "XYZ-000", Amount: 5}}, msg.Inputs[0].Coins)
	require.Equal(t, "BNB", msg.Outputs[0].Coins[0].Denom)
}

func TestGenerateOrderID(t *testing.T) {
	_, raw, err := crypto.DecodeAddress(testFrom)
	require.NoError(t, err)
	require.Equal(t, testOrderID, GenerateOrderID(raw, 3))
	require.Equal(t, "19AE2A31ACAA58D913274180C4B1E46214F92FEE-1", GenerateOrderID(raw, 0))
}

func TestEnumParsing(t *testing.T) {
	side, err := SideFromString("sell")
	require.NoError(t, err)
	assert.Equal(t, SideSell, side)
	_, err = SideFromString("hold")
	assert.Error(t, err)

	tif, err := TimeInForceFromString("IOC")
	require.NoError(t, err)
	assert.Equal(t, TimeInForceIOC, tif)
	_, err = TimeInForceFromString("GTC")
	assert.Error(t, err)

	opt, err := VoteOptionFromString("no_with_veto")
	require.NoError(t, err)
	assert.Equal(t, VoteNoWithVeto, opt)
	_, err = VoteOptionFromString("maybe")
	assert.Error(t, err)
	assert.Equal(t, "NoWithVeto", VoteOptionName(opt))
	assert.Equal(t, "Abstain", VoteOptionName(VoteAbstain))
	assert.Empty(t, VoteOptionName(9))
}

func TestAmounts(t *testing.T) {
	testCases := []struct {
		in  string
		out int64
		err bool
	}{
		{"1", 100000000, false},
		{"1.5", 150000000, false},
		{"0.00000001", 1, false},
		{"0.000000001", 0, true},
		{"-1", 0, true},
		{"abc", 0, true},
		{"100000000000", 0, true},
	}
	for _, tc := range testCases {
		v, err := ParseAmount(tc.in)
		if tc.err {
			assert.Error(t, err, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.out, v, tc.in)
	}
	assert.Equal(t, "1.50000000", FormatAmount(150000000))
	assert.Equal(t, "0.00000001", FormatAmount(1))
}
