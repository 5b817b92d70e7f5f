package lexema

import "github.com/reoring/lexema/valid"

// buildEndpoint assembles the validator bundle of one endpoint definition.
// Bodies without a declared schema accept anything.
func (c *compiler) buildEndpoint(n *SchemaNode) (*EndpointBundle, error) {
	params, err := c.buildParams(n.Parameters)
	if err != nil {
		return nil, err
	}
	b := &EndpointBundle{Type: n.Type, Parameters: params}
	switch n.Type {
	case KindQuery:
		if b.Output, err = c.buildBody(n.Output); err != nil {
			return nil, err
		}
	case KindProcedure:
		if b.Input, err = c.buildBody(n.Input); err != nil {
			return nil, err
		}
		if b.Output, err = c.buildBody(n.Output); err != nil {
			return nil, err
		}
	case KindSubscription:
		if b.Message, err = c.buildBody(n.Message); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (c *compiler) buildBody(body *EndpointBody) (valid.Validator, error) {
	if body == nil || body.Schema == nil {
		return valid.Any(), nil
	}
	return c.buildNode(body.Schema)
}
