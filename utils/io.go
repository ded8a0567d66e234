package utils

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
)

// GetJsonBytes issues a single GET and returns the raw response body.
// Non-2xx statuses come back as errors carrying the status and a body
// excerpt; no retries are ever attempted.
func GetJsonBytes(url string) ([]byte, error) {
	client := &http.Client{}
	request, requestErr := http.NewRequest("GET", url, nil)
	if requestErr != nil {
		return nil, requestErr
	}

	response, responseErr := client.Do(request)
	if responseErr != nil {
		return nil, responseErr
	}
	defer response.Body.Close()

	body, bodyErr := ioutil.ReadAll(response.Body)
	if bodyErr != nil {
		return nil, bodyErr
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		excerpt := string(body)
		if len(excerpt) > 256 {
			excerpt = excerpt[:256]
		}
		return nil, fmt.Errorf("GET %s returned %d : %s", url, response.StatusCode, excerpt)
	}

	return body, nil
}

// GetRequestReturnStuff GETs url and decodes the JSON response into T.
func GetRequestReturnStuff[T any](url string) (T, error) {
	var objects T

	body, err := GetJsonBytes(url)
	if err != nil {
		return objects, err
	}

	if jsonErr := json.Unmarshal(body, &objects); jsonErr != nil {
		return objects, jsonErr
	}

	return objects, nil
}
