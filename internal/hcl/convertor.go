package hcl

import (
	"context"
	"fmt"

	"github.com/specialistvlad/reimbursego/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// paramsType is the type every params attribute must convert to.
var paramsType = cty.Map(cty.Number)

// decodeParams converts a free-form params object into named scalars. A
// missing or null attribute yields an empty map.
func decodeParams(ctx context.Context, val *cty.Value) (map[string]float64, error) {
	logger := ctxlog.FromContext(ctx)
	params := make(map[string]float64)

	if val == nil || val.IsNull() {
		return params, nil
	}
	if !val.IsWhollyKnown() {
		return nil, fmt.Errorf("params must be fully known")
	}

	converted, err := convert.Convert(*val, paramsType)
	if err != nil {
		return nil, fmt.Errorf("cannot convert params from %s to %s: %w",
			val.Type().FriendlyName(), paramsType.FriendlyName(), err)
	}

	if !val.Type().Equals(converted.Type()) {
		logger.Debug("Implicitly converted params type.",
			"from", val.Type().FriendlyName(),
			"to", converted.Type().FriendlyName(),
		)
	}

	if err := gocty.FromCtyValue(converted, &params); err != nil {
		return nil, fmt.Errorf("failed to decode params: %w", err)
	}
	return params, nil
}
