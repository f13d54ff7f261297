// Package protocol defines the wire-level vocabulary of the Plaza
// marketplace API that both sides of the signing scheme share: header
// names, content types, the Authorization header format, and the
// structured error documents failed calls carry.
//
// # Authorization Header
//
// Signed requests carry an Authorization header of the form:
//
//	Authorization: hmac <publicKey>:<signature>
//
// FormatAuthorization produces this value from a computed signature and
// ParseAuthorization splits a received value back into its parts:
//
//	value := protocol.FormatAuthorization("abc", sig)
//	pub, sig, err := protocol.ParseAuthorization(value)
//
// # Error Documents
//
// Rejected requests return a structured body describing the rejection.
// JSON endpoints use:
//
//	{"code": "ORD-001", "message": "order not open", "violations": [{"field": "ean", "reason": "unknown"}]}
//
// XML endpoints use the capitalized equivalent:
//
//	<Error>
//	  <Code>ORD-001</Code>
//	  <Message>order not open</Message>
//	  <Violations><Violation><Field>ean</Field><Reason>unknown</Reason></Violation></Violations>
//	</Error>
//
// Older endpoints return a <ServiceErrors> list; ParseErrorDocument folds
// its first entry into the same ErrorDocument shape.
package protocol
