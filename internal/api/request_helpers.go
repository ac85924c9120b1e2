package api

import (
	"net/http"

	"github.com/phrazzld/hero-api/internal/domain"
	"github.com/phrazzld/hero-api/internal/service"
)

// operatorSuffix is appended to an attribute name to form its operator
// parameter, e.g. intelligence_op.
const operatorSuffix = "_op"

// queryParamsFromRequest collects the GET /hero query string into
// service.QueryParams. Values are passed through unvalidated.
func queryParamsFromRequest(r *http.Request) service.QueryParams {
	values := r.URL.Query()

	params := service.QueryParams{
		Name:  values.Get("name"),
		Stats: make(map[domain.Field]service.StatParam, len(domain.StatFields)),
	}
	for _, field := range domain.StatFields {
		value := values.Get(string(field))
		if value == "" {
			continue
		}
		params.Stats[field] = service.StatParam{
			Value: value,
			Op:    values.Get(string(field) + operatorSuffix),
		}
	}
	return params
}
