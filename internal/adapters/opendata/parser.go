package opendata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"restaurant-finder-api/internal/models"
)

// Response is a parsed upstream payload
type Response struct {
	Records    []models.RawRecord
	TotalCount int
	Result     models.ResultStatus
	BodyLength int
}

// Parse decodes body according to the source format and extracts the rows,
// the declared total count and the result status.
func Parse(src *Source, body []byte) (*Response, error) {
	switch src.Format {
	case FormatXML:
		return parseXML(src, body)
	case FormatJSON:
		return parseJSON(src, body)
	default:
		return nil, NewUpstreamError("parse", src.Name, fmt.Errorf("unsupported format %q", src.Format))
	}
}

func parseXML(src *Source, body []byte) (*Response, error) {
	doc, err := decodeXMLTree(body)
	if err != nil {
		return nil, newMalformedError(src.Name, len(body), err)
	}

	root, ok := models.FirstOrDefault(doc[src.Service], nil).(xmlNode)
	if !ok {
		return nil, newMalformedError(src.Name, len(body), resultCause(src, xmlResult(src, doc)))
	}

	rows, ok := root["row"]
	if !ok {
		return nil, newMalformedError(src.Name, len(body), resultCause(src, xmlResult(src, root)))
	}

	records := make([]models.RawRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, xmlRecord(row))
	}

	return &Response{
		Records:    records,
		TotalCount: parseCount(xmlRecord(root).String(src.CountKey)),
		Result:     xmlResult(src, root),
		BodyLength: len(body),
	}, nil
}

func xmlRecord(value any) models.RawRecord {
	node, ok := value.(xmlNode)
	if !ok {
		return models.RawRecord{}
	}
	record := make(models.RawRecord, len(node))
	for code, values := range node {
		record[code] = values
	}
	return record
}

func xmlResult(src *Source, node xmlNode) models.ResultStatus {
	result := xmlRecord(models.FirstOrDefault(node[src.ResultKey], nil))
	return models.ResultStatus{
		Code:    result.String(src.ResultCodeKey),
		Message: result.String(src.ResultMessageKey),
	}
}

func parseJSON(src *Source, body []byte) (*Response, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var doc map[string]any
	if err := dec.Decode(&doc); err != nil {
		return nil, newMalformedError(src.Name, len(body), err)
	}

	root, ok := doc[src.Service].(map[string]any)
	if !ok {
		return nil, newMalformedError(src.Name, len(body), resultCause(src, jsonResult(src, doc)))
	}

	rows, ok := root["row"].([]any)
	if !ok {
		return nil, newMalformedError(src.Name, len(body), resultCause(src, jsonResult(src, root)))
	}

	records := make([]models.RawRecord, 0, len(rows))
	for _, row := range rows {
		fields, _ := row.(map[string]any)
		records = append(records, models.RawRecord(fields))
	}

	return &Response{
		Records:    records,
		TotalCount: parseCount(models.RawRecord(root).String(src.CountKey)),
		Result:     jsonResult(src, root),
		BodyLength: len(body),
	}, nil
}

func jsonResult(src *Source, node map[string]any) models.ResultStatus {
	result, _ := node[src.ResultKey].(map[string]any)
	record := models.RawRecord(result)
	return models.ResultStatus{
		Code:    record.String(src.ResultCodeKey),
		Message: record.String(src.ResultMessageKey),
	}
}

// resultCause turns an upstream result status into a diagnostic cause for
// malformed responses. Missing structure usually comes with an error code
// such as INFO-200 (no data) or INFO-100 (invalid key).
func resultCause(src *Source, result models.ResultStatus) error {
	if result.IsZero() {
		return fmt.Errorf("missing %s row list", src.Service)
	}
	return fmt.Errorf("missing %s row list, upstream result %s: %s", src.Service, result.Code, result.Message)
}

func parseCount(value string) int {
	count, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || count < 0 {
		return 0
	}
	return count
}
