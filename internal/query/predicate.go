package query

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/goran-ethernal/ShadowLogs/internal/filter"
)

// ClauseKind identifies the column group a clause constrains.
type ClauseKind int

const (
	ClauseAddress ClauseKind = iota
	ClauseBlockRange
	ClauseTopic0
	ClauseTopic1
	ClauseTopic2
	ClauseTopic3
)

func (k ClauseKind) String() string {
	switch k {
	case ClauseAddress:
		return "address"
	case ClauseBlockRange:
		return "block_range"
	case ClauseTopic0, ClauseTopic1, ClauseTopic2, ClauseTopic3:
		return fmt.Sprintf("topic_%d", k-ClauseTopic0)
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Clause is one condition of a predicate. Fragment uses ? placeholders,
// one per element of Args.
type Clause struct {
	Kind     ClauseKind
	Fragment string
	Args     []any
}

// Predicate is a conjunction of clauses over the shadow_logs columns.
type Predicate struct {
	Clauses []Clause
}

// Build renders a validated filter into a predicate. Clauses always come in the order
// address, block range, topic 0..3, and clauses for unset fields are omitted.
// The block range clause is always present. Addresses and topics must be 0x-prefixed
// even-length hex; any other value is reported as an error.
func Build(v *filter.Validated) (Predicate, error) {
	clauses := make([]Clause, 0, 2+filter.MaxTopics) //nolint:mnd

	if len(v.Addresses) > 0 {
		placeholders := make([]string, len(v.Addresses))
		args := make([]any, len(v.Addresses))
		for i, address := range v.Addresses {
			decoded, err := hexutil.Decode(address)
			if err != nil {
				return Predicate{}, fmt.Errorf("invalid address[%d] %q: %w", i, address, err)
			}
			placeholders[i] = "?"
			args[i] = decoded
		}

		clauses = append(clauses, Clause{
			Kind:     ClauseAddress,
			Fragment: fmt.Sprintf("address IN (%s)", strings.Join(placeholders, ", ")),
			Args:     args,
		})
	}

	clauses = append(clauses, Clause{
		Kind:     ClauseBlockRange,
		Fragment: "block_number BETWEEN ? AND ?",
		Args:     []any{v.FromBlock, v.ToBlock},
	})

	for i, topic := range v.Topics {
		if topic == nil {
			continue
		}

		decoded, err := hexutil.Decode(*topic)
		if err != nil {
			return Predicate{}, fmt.Errorf("invalid topics[%d] %q: %w", i, *topic, err)
		}

		clauses = append(clauses, Clause{
			Kind:     ClauseTopic0 + ClauseKind(i),
			Fragment: fmt.Sprintf("topic_%d = ?", i),
			Args:     []any{decoded},
		})
	}

	return Predicate{Clauses: clauses}, nil
}

// Where returns the WHERE clause text and its arguments in placeholder order.
func (p Predicate) Where() (string, []any) {
	if len(p.Clauses) == 0 {
		return "", nil
	}

	fragments := make([]string, len(p.Clauses))
	var args []any
	for i, clause := range p.Clauses {
		fragments[i] = clause.Fragment
		args = append(args, clause.Args...)
	}

	return "WHERE " + strings.Join(fragments, " AND "), args
}

// String renders the predicate with its values inlined. Binary values are shown
// as X'..' literals. The result is meant for logs and is never executed.
func (p Predicate) String() string {
	where, args := p.Where()

	var sb strings.Builder
	n := 0
	for _, r := range where {
		if r != '?' || n >= len(args) {
			sb.WriteRune(r)
			continue
		}

		switch v := args[n].(type) {
		case []byte:
			fmt.Fprintf(&sb, "X'%s'", hex.EncodeToString(v))
		default:
			fmt.Fprintf(&sb, "%v", v)
		}
		n++
	}

	return sb.String()
}
