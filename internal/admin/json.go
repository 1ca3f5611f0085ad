package admin

import "encoding/json"

func unmarshalModel(data []byte, out any) error {
	return json.Unmarshal(data, out)
}
