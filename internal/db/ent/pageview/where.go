// Code generated by ent, DO NOT EDIT.

package pageview

import (
	"foliolink/internal/db/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PageView {
	return predicate.PageView(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PageView {
	return predicate.PageView(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PageView {
	return predicate.PageView(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PageView {
	return predicate.PageView(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PageView {
	return predicate.PageView(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PageView {
	return predicate.PageView(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PageView {
	return predicate.PageView(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PageView {
	return predicate.PageView(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PageView {
	return predicate.PageView(sql.FieldLTE(FieldID, id))
}

// Username applies equality check predicate on the "username" field. It's identical to UsernameEQ.
func Username(v string) predicate.PageView {
	return predicate.PageView(sql.FieldEQ(FieldUsername, v))
}

// Path applies equality check predicate on the "path" field. It's identical to PathEQ.
func Path(v string) predicate.PageView {
	return predicate.PageView(sql.FieldEQ(FieldPath, v))
}

// Referrer applies equality check predicate on the "referrer" field. It's identical to ReferrerEQ.
func Referrer(v string) predicate.PageView {
	return predicate.PageView(sql.FieldEQ(FieldReferrer, v))
}

// VisitedAt applies equality check predicate on the "visited_at" field. It's identical to VisitedAtEQ.
func VisitedAt(v time.Time) predicate.PageView {
	return predicate.PageView(sql.FieldEQ(FieldVisitedAt, v))
}

// UsernameEQ applies the EQ predicate on the "username" field.
func UsernameEQ(v string) predicate.PageView {
	return predicate.PageView(sql.FieldEQ(FieldUsername, v))
}

// UsernameNEQ applies the NEQ predicate on the "username" field.
func UsernameNEQ(v string) predicate.PageView {
	return predicate.PageView(sql.FieldNEQ(FieldUsername, v))
}

// UsernameIn applies the In predicate on the "username" field.
func UsernameIn(vs ...string) predicate.PageView {
	return predicate.PageView(sql.FieldIn(FieldUsername, vs...))
}

// UsernameNotIn applies the NotIn predicate on the "username" field.
func UsernameNotIn(vs ...string) predicate.PageView {
	return predicate.PageView(sql.FieldNotIn(FieldUsername, vs...))
}

// UsernameGT applies the GT predicate on the "username" field.
func UsernameGT(v string) predicate.PageView {
	return predicate.PageView(sql.FieldGT(FieldUsername, v))
}

// UsernameGTE applies the GTE predicate on the "username" field.
func UsernameGTE(v string) predicate.PageView {
	return predicate.PageView(sql.FieldGTE(FieldUsername, v))
}

// UsernameLT applies the LT predicate on the "username" field.
func UsernameLT(v string) predicate.PageView {
	return predicate.PageView(sql.FieldLT(FieldUsername, v))
}

// UsernameLTE applies the LTE predicate on the "username" field.
func UsernameLTE(v string) predicate.PageView {
	return predicate.PageView(sql.FieldLTE(FieldUsername, v))
}

// UsernameContains applies the Contains predicate on the "username" field.
func UsernameContains(v string) predicate.PageView {
	return predicate.PageView(sql.FieldContains(FieldUsername, v))
}

// UsernameHasPrefix applies the HasPrefix predicate on the "username" field.
func UsernameHasPrefix(v string) predicate.PageView {
	return predicate.PageView(sql.FieldHasPrefix(FieldUsername, v))
}

// UsernameHasSuffix applies the HasSuffix predicate on the "username" field.
func UsernameHasSuffix(v string) predicate.PageView {
	return predicate.PageView(sql.FieldHasSuffix(FieldUsername, v))
}

// UsernameEqualFold applies the EqualFold predicate on the "username" field.
func UsernameEqualFold(v string) predicate.PageView {
	return predicate.PageView(sql.FieldEqualFold(FieldUsername, v))
}

// UsernameContainsFold applies the ContainsFold predicate on the "username" field.
func UsernameContainsFold(v string) predicate.PageView {
	return predicate.PageView(sql.FieldContainsFold(FieldUsername, v))
}

// PathEQ applies the EQ predicate on the "path" field.
func PathEQ(v string) predicate.PageView {
	return predicate.PageView(sql.FieldEQ(FieldPath, v))
}

// PathNEQ applies the NEQ predicate on the "path" field.
func PathNEQ(v string) predicate.PageView {
	return predicate.PageView(sql.FieldNEQ(FieldPath, v))
}

// PathIn applies the In predicate on the "path" field.
func PathIn(vs ...string) predicate.PageView {
	return predicate.PageView(sql.FieldIn(FieldPath, vs...))
}

// PathNotIn applies the NotIn predicate on the "path" field.
func PathNotIn(vs ...string) predicate.PageView {
	return predicate.PageView(sql.FieldNotIn(FieldPath, vs...))
}

// PathGT applies the GT predicate on the "path" field.
func PathGT(v string) predicate.PageView {
	return predicate.PageView(sql.FieldGT(FieldPath, v))
}

// PathGTE applies the GTE predicate on the "path" field.
func PathGTE(v string) predicate.PageView {
	return predicate.PageView(sql.FieldGTE(FieldPath, v))
}

// PathLT applies the LT predicate on the "path" field.
func PathLT(v string) predicate.PageView {
	return predicate.PageView(sql.FieldLT(FieldPath, v))
}

// PathLTE applies the LTE predicate on the "path" field.
func PathLTE(v string) predicate.PageView {
	return predicate.PageView(sql.FieldLTE(FieldPath, v))
}

// PathContains applies the Contains predicate on the "path" field.
func PathContains(v string) predicate.PageView {
	return predicate.PageView(sql.FieldContains(FieldPath, v))
}

// PathHasPrefix applies the HasPrefix predicate on the "path" field.
func PathHasPrefix(v string) predicate.PageView {
	return predicate.PageView(sql.FieldHasPrefix(FieldPath, v))
}

// PathHasSuffix applies the HasSuffix predicate on the "path" field.
func PathHasSuffix(v string) predicate.PageView {
	return predicate.PageView(sql.FieldHasSuffix(FieldPath, v))
}

// PathEqualFold applies the EqualFold predicate on the "path" field.
func PathEqualFold(v string) predicate.PageView {
	return predicate.PageView(sql.FieldEqualFold(FieldPath, v))
}

// PathContainsFold applies the ContainsFold predicate on the "path" field.
func PathContainsFold(v string) predicate.PageView {
	return predicate.PageView(sql.FieldContainsFold(FieldPath, v))
}

// ReferrerEQ applies the EQ predicate on the "referrer" field.
func ReferrerEQ(v string) predicate.PageView {
	return predicate.PageView(sql.FieldEQ(FieldReferrer, v))
}

// ReferrerNEQ applies the NEQ predicate on the "referrer" field.
func ReferrerNEQ(v string) predicate.PageView {
	return predicate.PageView(sql.FieldNEQ(FieldReferrer, v))
}

// ReferrerIn applies the In predicate on the "referrer" field.
func ReferrerIn(vs ...string) predicate.PageView {
	return predicate.PageView(sql.FieldIn(FieldReferrer, vs...))
}

// ReferrerNotIn applies the NotIn predicate on the "referrer" field.
func ReferrerNotIn(vs ...string) predicate.PageView {
	return predicate.PageView(sql.FieldNotIn(FieldReferrer, vs...))
}

// ReferrerGT applies the GT predicate on the "referrer" field.
func ReferrerGT(v string) predicate.PageView {
	return predicate.PageView(sql.FieldGT(FieldReferrer, v))
}

// ReferrerGTE applies the GTE predicate on the "referrer" field.
func ReferrerGTE(v string) predicate.PageView {
	return predicate.PageView(sql.FieldGTE(FieldReferrer, v))
}

// ReferrerLT applies the LT predicate on the "referrer" field.
func ReferrerLT(v string) predicate.PageView {
	return predicate.PageView(sql.FieldLT(FieldReferrer, v))
}

// ReferrerLTE applies the LTE predicate on the "referrer" field.
func ReferrerLTE(v string) predicate.PageView {
	return predicate.PageView(sql.FieldLTE(FieldReferrer, v))
}

// ReferrerContains applies the Contains predicate on the "referrer" field.
func ReferrerContains(v string) predicate.PageView {
	return predicate.PageView(sql.FieldContains(FieldReferrer, v))
}

// ReferrerHasPrefix applies the HasPrefix predicate on the "referrer" field.
func ReferrerHasPrefix(v string) predicate.PageView {
	return predicate.PageView(sql.FieldHasPrefix(FieldReferrer, v))
}

// ReferrerHasSuffix applies the HasSuffix predicate on the "referrer" field.
func ReferrerHasSuffix(v string) predicate.PageView {
	return predicate.PageView(sql.FieldHasSuffix(FieldReferrer, v))
}

// ReferrerIsNil applies the IsNil predicate on the "referrer" field.
func ReferrerIsNil() predicate.PageView {
	return predicate.PageView(sql.FieldIsNull(FieldReferrer))
}

// ReferrerNotNil applies the NotNil predicate on the "referrer" field.
func ReferrerNotNil() predicate.PageView {
	return predicate.PageView(sql.FieldNotNull(FieldReferrer))
}

// ReferrerEqualFold applies the EqualFold predicate on the "referrer" field.
func ReferrerEqualFold(v string) predicate.PageView {
	return predicate.PageView(sql.FieldEqualFold(FieldReferrer, v))
}

// ReferrerContainsFold applies the ContainsFold predicate on the "referrer" field.
func ReferrerContainsFold(v string) predicate.PageView {
	return predicate.PageView(sql.FieldContainsFold(FieldReferrer, v))
}

// VisitedAtEQ applies the EQ predicate on the "visited_at" field.
func VisitedAtEQ(v time.Time) predicate.PageView {
	return predicate.PageView(sql.FieldEQ(FieldVisitedAt, v))
}

// VisitedAtNEQ applies the NEQ predicate on the "visited_at" field.
func VisitedAtNEQ(v time.Time) predicate.PageView {
	return predicate.PageView(sql.FieldNEQ(FieldVisitedAt, v))
}

// VisitedAtIn applies the In predicate on the "visited_at" field.
func VisitedAtIn(vs ...time.Time) predicate.PageView {
	return predicate.PageView(sql.FieldIn(FieldVisitedAt, vs...))
}

// VisitedAtNotIn applies the NotIn predicate on the "visited_at" field.
func VisitedAtNotIn(vs ...time.Time) predicate.PageView {
	return predicate.PageView(sql.FieldNotIn(FieldVisitedAt, vs...))
}

// VisitedAtGT applies the GT predicate on the "visited_at" field.
func VisitedAtGT(v time.Time) predicate.PageView {
	return predicate.PageView(sql.FieldGT(FieldVisitedAt, v))
}

// VisitedAtGTE applies the GTE predicate on the "visited_at" field.
func VisitedAtGTE(v time.Time) predicate.PageView {
	return predicate.PageView(sql.FieldGTE(FieldVisitedAt, v))
}

// VisitedAtLT applies the LT predicate on the "visited_at" field.
func VisitedAtLT(v time.Time) predicate.PageView {
	return predicate.PageView(sql.FieldLT(FieldVisitedAt, v))
}

// VisitedAtLTE applies the LTE predicate on the "visited_at" field.
func VisitedAtLTE(v time.Time) predicate.PageView {
	return predicate.PageView(sql.FieldLTE(FieldVisitedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PageView) predicate.PageView {
	return predicate.PageView(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PageView) predicate.PageView {
	return predicate.PageView(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PageView) predicate.PageView {
	return predicate.PageView(sql.NotPredicates(p))
}
