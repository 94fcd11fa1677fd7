// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/bestofgoa/bok/gen/ent/attribute"
	"github.com/bestofgoa/bok/gen/ent/faq"
	"github.com/bestofgoa/bok/gen/ent/listing"
	"github.com/bestofgoa/bok/gen/ent/listingimage"
	"github.com/bestofgoa/bok/gen/ent/predicate"
	"github.com/bestofgoa/bok/gen/ent/submission"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAttribute    = "Attribute"
	TypeFAQ          = "FAQ"
	TypeListing      = "Listing"
	TypeListingImage = "ListingImage"
	TypeSubmission   = "Submission"
)

// AttributeMutation represents an operation that mutates the Attribute nodes in the graph.
type AttributeMutation struct {
	config
	op              Op
	typ             string
	id              *int
	kind            *string
	name            *string
	slug            *string
	clearedFields   map[string]struct{}
	listings        map[uuid.UUID]struct{}
	removedlistings map[uuid.UUID]struct{}
	clearedlistings bool
	done            bool
	oldValue        func(context.Context) (*Attribute, error)
	predicates      []predicate.Attribute
}

var _ ent.Mutation = (*AttributeMutation)(nil)

// attributeOption allows management of the mutation configuration using functional options.
type attributeOption func(*AttributeMutation)

// newAttributeMutation creates new mutation for the Attribute entity.
func newAttributeMutation(c config, op Op, opts ...attributeOption) *AttributeMutation {
	m := &AttributeMutation{
		config:        c,
		op:            op,
		typ:           TypeAttribute,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAttributeID sets the ID field of the mutation.
func withAttributeID(id int) attributeOption {
	return func(m *AttributeMutation) {
		var (
			err   error
			once  sync.Once
			value *Attribute
		)
		m.oldValue = func(ctx context.Context) (*Attribute, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Attribute.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAttribute sets the old Attribute of the mutation.
func withAttribute(node *Attribute) attributeOption {
	return func(m *AttributeMutation) {
		m.oldValue = func(context.Context) (*Attribute, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AttributeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AttributeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AttributeMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AttributeMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Attribute.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetKind sets the "kind" field.
func (m *AttributeMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *AttributeMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Attribute entity.
// If the Attribute object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttributeMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *AttributeMutation) ResetKind() {
	m.kind = nil
}

// SetName sets the "name" field.
func (m *AttributeMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *AttributeMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Attribute entity.
// If the Attribute object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttributeMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *AttributeMutation) ResetName() {
	m.name = nil
}

// SetSlug sets the "slug" field.
func (m *AttributeMutation) SetSlug(s string) {
	m.slug = &s
}

// Slug returns the value of the "slug" field in the mutation.
func (m *AttributeMutation) Slug() (r string, exists bool) {
	v := m.slug
	if v == nil {
		return
	}
	return *v, true
}

// OldSlug returns the old "slug" field's value of the Attribute entity.
// If the Attribute object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttributeMutation) OldSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlug: %w", err)
	}
	return oldValue.Slug, nil
}

// ResetSlug resets all changes to the "slug" field.
func (m *AttributeMutation) ResetSlug() {
	m.slug = nil
}

// AddListingIDs adds the "listings" edge to the Listing entity by ids.
func (m *AttributeMutation) AddListingIDs(ids ...uuid.UUID) {
	if m.listings == nil {
		m.listings = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.listings[ids[i]] = struct{}{}
	}
}

// ClearListings clears the "listings" edge to the Listing entity.
func (m *AttributeMutation) ClearListings() {
	m.clearedlistings = true
}

// ListingsCleared reports if the "listings" edge to the Listing entity was cleared.
func (m *AttributeMutation) ListingsCleared() bool {
	return m.clearedlistings
}

// RemoveListingIDs removes the "listings" edge to the Listing entity by IDs.
func (m *AttributeMutation) RemoveListingIDs(ids ...uuid.UUID) {
	if m.removedlistings == nil {
		m.removedlistings = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.listings, ids[i])
		m.removedlistings[ids[i]] = struct{}{}
	}
}

// RemovedListings returns the removed IDs of the "listings" edge to the Listing entity.
func (m *AttributeMutation) RemovedListingsIDs() (ids []uuid.UUID) {
	for id := range m.removedlistings {
		ids = append(ids, id)
	}
	return
}

// ListingsIDs returns the "listings" edge IDs in the mutation.
func (m *AttributeMutation) ListingsIDs() (ids []uuid.UUID) {
	for id := range m.listings {
		ids = append(ids, id)
	}
	return
}

// ResetListings resets all changes to the "listings" edge.
func (m *AttributeMutation) ResetListings() {
	m.listings = nil
	m.clearedlistings = false
	m.removedlistings = nil
}

// Where appends a list predicates to the AttributeMutation builder.
func (m *AttributeMutation) Where(ps ...predicate.Attribute) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AttributeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AttributeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Attribute, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AttributeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AttributeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Attribute).
func (m *AttributeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AttributeMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.kind != nil {
		fields = append(fields, attribute.FieldKind)
	}
	if m.name != nil {
		fields = append(fields, attribute.FieldName)
	}
	if m.slug != nil {
		fields = append(fields, attribute.FieldSlug)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AttributeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case attribute.FieldKind:
		return m.Kind()
	case attribute.FieldName:
		return m.Name()
	case attribute.FieldSlug:
		return m.Slug()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AttributeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case attribute.FieldKind:
		return m.OldKind(ctx)
	case attribute.FieldName:
		return m.OldName(ctx)
	case attribute.FieldSlug:
		return m.OldSlug(ctx)
	}
	return nil, fmt.Errorf("unknown Attribute field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttributeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case attribute.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case attribute.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case attribute.FieldSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlug(v)
		return nil
	}
	return fmt.Errorf("unknown Attribute field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AttributeMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AttributeMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttributeMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Attribute numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AttributeMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AttributeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AttributeMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Attribute nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AttributeMutation) ResetField(name string) error {
	switch name {
	case attribute.FieldKind:
		m.ResetKind()
		return nil
	case attribute.FieldName:
		m.ResetName()
		return nil
	case attribute.FieldSlug:
		m.ResetSlug()
		return nil
	}
	return fmt.Errorf("unknown Attribute field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AttributeMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.listings != nil {
		edges = append(edges, attribute.EdgeListings)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AttributeMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case attribute.EdgeListings:
		ids := make([]ent.Value, 0, len(m.listings))
		for id := range m.listings {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AttributeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedlistings != nil {
		edges = append(edges, attribute.EdgeListings)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AttributeMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case attribute.EdgeListings:
		ids := make([]ent.Value, 0, len(m.removedlistings))
		for id := range m.removedlistings {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AttributeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedlistings {
		edges = append(edges, attribute.EdgeListings)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AttributeMutation) EdgeCleared(name string) bool {
	switch name {
	case attribute.EdgeListings:
		return m.clearedlistings
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AttributeMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Attribute unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AttributeMutation) ResetEdge(name string) error {
	switch name {
	case attribute.EdgeListings:
		m.ResetListings()
		return nil
	}
	return fmt.Errorf("unknown Attribute edge %s", name)
}

// FAQMutation represents an operation that mutates the FAQ nodes in the graph.
type FAQMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	question         *string
	answer           *string
	display_order    *int
	adddisplay_order *int
	created_at       *time.Time
	clearedFields    map[string]struct{}
	listing          *uuid.UUID
	clearedlisting   bool
	done             bool
	oldValue         func(context.Context) (*FAQ, error)
	predicates       []predicate.FAQ
}

var _ ent.Mutation = (*FAQMutation)(nil)

// faqOption allows management of the mutation configuration using functional options.
type faqOption func(*FAQMutation)

// newFAQMutation creates new mutation for the FAQ entity.
func newFAQMutation(c config, op Op, opts ...faqOption) *FAQMutation {
	m := &FAQMutation{
		config:        c,
		op:            op,
		typ:           TypeFAQ,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFAQID sets the ID field of the mutation.
func withFAQID(id uuid.UUID) faqOption {
	return func(m *FAQMutation) {
		var (
			err   error
			once  sync.Once
			value *FAQ
		)
		m.oldValue = func(ctx context.Context) (*FAQ, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FAQ.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFAQ sets the old FAQ of the mutation.
func withFAQ(node *FAQ) faqOption {
	return func(m *FAQMutation) {
		m.oldValue = func(context.Context) (*FAQ, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FAQMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FAQMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of FAQ entities.
func (m *FAQMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FAQMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FAQMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FAQ.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetListingID sets the "listing_id" field.
func (m *FAQMutation) SetListingID(u uuid.UUID) {
	m.listing = &u
}

// ListingID returns the value of the "listing_id" field in the mutation.
func (m *FAQMutation) ListingID() (r uuid.UUID, exists bool) {
	v := m.listing
	if v == nil {
		return
	}
	return *v, true
}

// OldListingID returns the old "listing_id" field's value of the FAQ entity.
// If the FAQ object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FAQMutation) OldListingID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldListingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldListingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldListingID: %w", err)
	}
	return oldValue.ListingID, nil
}

// ResetListingID resets all changes to the "listing_id" field.
func (m *FAQMutation) ResetListingID() {
	m.listing = nil
}

// SetQuestion sets the "question" field.
func (m *FAQMutation) SetQuestion(s string) {
	m.question = &s
}

// Question returns the value of the "question" field in the mutation.
func (m *FAQMutation) Question() (r string, exists bool) {
	v := m.question
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestion returns the old "question" field's value of the FAQ entity.
// If the FAQ object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FAQMutation) OldQuestion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestion: %w", err)
	}
	return oldValue.Question, nil
}

// ResetQuestion resets all changes to the "question" field.
func (m *FAQMutation) ResetQuestion() {
	m.question = nil
}

// SetAnswer sets the "answer" field.
func (m *FAQMutation) SetAnswer(s string) {
	m.answer = &s
}

// Answer returns the value of the "answer" field in the mutation.
func (m *FAQMutation) Answer() (r string, exists bool) {
	v := m.answer
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswer returns the old "answer" field's value of the FAQ entity.
// If the FAQ object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FAQMutation) OldAnswer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswer: %w", err)
	}
	return oldValue.Answer, nil
}

// ResetAnswer resets all changes to the "answer" field.
func (m *FAQMutation) ResetAnswer() {
	m.answer = nil
}

// SetDisplayOrder sets the "display_order" field.
func (m *FAQMutation) SetDisplayOrder(i int) {
	m.display_order = &i
	m.adddisplay_order = nil
}

// DisplayOrder returns the value of the "display_order" field in the mutation.
func (m *FAQMutation) DisplayOrder() (r int, exists bool) {
	v := m.display_order
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayOrder returns the old "display_order" field's value of the FAQ entity.
// If the FAQ object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FAQMutation) OldDisplayOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayOrder: %w", err)
	}
	return oldValue.DisplayOrder, nil
}

// AddDisplayOrder adds i to the "display_order" field.
func (m *FAQMutation) AddDisplayOrder(i int) {
	if m.adddisplay_order != nil {
		*m.adddisplay_order += i
	} else {
		m.adddisplay_order = &i
	}
}

// AddedDisplayOrder returns the value that was added to the "display_order" field in this mutation.
func (m *FAQMutation) AddedDisplayOrder() (r int, exists bool) {
	v := m.adddisplay_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetDisplayOrder resets all changes to the "display_order" field.
func (m *FAQMutation) ResetDisplayOrder() {
	m.display_order = nil
	m.adddisplay_order = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *FAQMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FAQMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the FAQ entity.
// If the FAQ object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FAQMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FAQMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearListing clears the "listing" edge to the Listing entity.
func (m *FAQMutation) ClearListing() {
	m.clearedlisting = true
	m.clearedFields[faq.FieldListingID] = struct{}{}
}

// ListingCleared reports if the "listing" edge to the Listing entity was cleared.
func (m *FAQMutation) ListingCleared() bool {
	return m.clearedlisting
}

// ListingIDs returns the "listing" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ListingID instead. It exists only for internal usage by the builders.
func (m *FAQMutation) ListingIDs() (ids []uuid.UUID) {
	if id := m.listing; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetListing resets all changes to the "listing" edge.
func (m *FAQMutation) ResetListing() {
	m.listing = nil
	m.clearedlisting = false
}

// Where appends a list predicates to the FAQMutation builder.
func (m *FAQMutation) Where(ps ...predicate.FAQ) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FAQMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FAQMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FAQ, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FAQMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FAQMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FAQ).
func (m *FAQMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FAQMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.listing != nil {
		fields = append(fields, faq.FieldListingID)
	}
	if m.question != nil {
		fields = append(fields, faq.FieldQuestion)
	}
	if m.answer != nil {
		fields = append(fields, faq.FieldAnswer)
	}
	if m.display_order != nil {
		fields = append(fields, faq.FieldDisplayOrder)
	}
	if m.created_at != nil {
		fields = append(fields, faq.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FAQMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case faq.FieldListingID:
		return m.ListingID()
	case faq.FieldQuestion:
		return m.Question()
	case faq.FieldAnswer:
		return m.Answer()
	case faq.FieldDisplayOrder:
		return m.DisplayOrder()
	case faq.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FAQMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case faq.FieldListingID:
		return m.OldListingID(ctx)
	case faq.FieldQuestion:
		return m.OldQuestion(ctx)
	case faq.FieldAnswer:
		return m.OldAnswer(ctx)
	case faq.FieldDisplayOrder:
		return m.OldDisplayOrder(ctx)
	case faq.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown FAQ field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FAQMutation) SetField(name string, value ent.Value) error {
	switch name {
	case faq.FieldListingID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetListingID(v)
		return nil
	case faq.FieldQuestion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestion(v)
		return nil
	case faq.FieldAnswer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswer(v)
		return nil
	case faq.FieldDisplayOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayOrder(v)
		return nil
	case faq.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown FAQ field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FAQMutation) AddedFields() []string {
	var fields []string
	if m.adddisplay_order != nil {
		fields = append(fields, faq.FieldDisplayOrder)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FAQMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case faq.FieldDisplayOrder:
		return m.AddedDisplayOrder()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FAQMutation) AddField(name string, value ent.Value) error {
	switch name {
	case faq.FieldDisplayOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDisplayOrder(v)
		return nil
	}
	return fmt.Errorf("unknown FAQ numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FAQMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FAQMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FAQMutation) ClearField(name string) error {
	return fmt.Errorf("unknown FAQ nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FAQMutation) ResetField(name string) error {
	switch name {
	case faq.FieldListingID:
		m.ResetListingID()
		return nil
	case faq.FieldQuestion:
		m.ResetQuestion()
		return nil
	case faq.FieldAnswer:
		m.ResetAnswer()
		return nil
	case faq.FieldDisplayOrder:
		m.ResetDisplayOrder()
		return nil
	case faq.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown FAQ field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FAQMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.listing != nil {
		edges = append(edges, faq.EdgeListing)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FAQMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case faq.EdgeListing:
		if id := m.listing; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FAQMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FAQMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FAQMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedlisting {
		edges = append(edges, faq.EdgeListing)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FAQMutation) EdgeCleared(name string) bool {
	switch name {
	case faq.EdgeListing:
		return m.clearedlisting
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FAQMutation) ClearEdge(name string) error {
	switch name {
	case faq.EdgeListing:
		m.ClearListing()
		return nil
	}
	return fmt.Errorf("unknown FAQ unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FAQMutation) ResetEdge(name string) error {
	switch name {
	case faq.EdgeListing:
		m.ResetListing()
		return nil
	}
	return fmt.Errorf("unknown FAQ edge %s", name)
}

// ListingMutation represents an operation that mutates the Listing nodes in the graph.
type ListingMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uuid.UUID
	entity_type            *string
	name                   *string
	slug                   *string
	google_place_id        *string
	address                *string
	area                   *string
	latitude               *float64
	addlatitude            *float64
	longitude              *float64
	addlongitude           *float64
	phone                  *string
	email                  *string
	website                *string
	instagram              *string
	facebook               *string
	description            *string
	short_description      *string
	meta_title             *string
	meta_description       *string
	meta_keywords          *string
	price_level            *int
	addprice_level         *int
	opening_hours          *string
	rating                 *float64
	addrating              *float64
	review_count           *int
	addreview_count        *int
	bok_score              *float64
	addbok_score           *float64
	active                 *bool
	verified               *bool
	featured               *bool
	apify_output           *json.RawMessage
	appendapify_output     json.RawMessage
	firecrawl_output       *json.RawMessage
	appendfirecrawl_output json.RawMessage
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	images                 map[uuid.UUID]struct{}
	removedimages          map[uuid.UUID]struct{}
	clearedimages          bool
	faqs                   map[uuid.UUID]struct{}
	removedfaqs            map[uuid.UUID]struct{}
	clearedfaqs            bool
	attributes             map[int]struct{}
	removedattributes      map[int]struct{}
	clearedattributes      bool
	done                   bool
	oldValue               func(context.Context) (*Listing, error)
	predicates             []predicate.Listing
}

var _ ent.Mutation = (*ListingMutation)(nil)

// listingOption allows management of the mutation configuration using functional options.
type listingOption func(*ListingMutation)

// newListingMutation creates new mutation for the Listing entity.
func newListingMutation(c config, op Op, opts ...listingOption) *ListingMutation {
	m := &ListingMutation{
		config:        c,
		op:            op,
		typ:           TypeListing,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withListingID sets the ID field of the mutation.
func withListingID(id uuid.UUID) listingOption {
	return func(m *ListingMutation) {
		var (
			err   error
			once  sync.Once
			value *Listing
		)
		m.oldValue = func(ctx context.Context) (*Listing, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Listing.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withListing sets the old Listing of the mutation.
func withListing(node *Listing) listingOption {
	return func(m *ListingMutation) {
		m.oldValue = func(context.Context) (*Listing, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ListingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ListingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Listing entities.
func (m *ListingMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ListingMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ListingMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Listing.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEntityType sets the "entity_type" field.
func (m *ListingMutation) SetEntityType(s string) {
	m.entity_type = &s
}

// EntityType returns the value of the "entity_type" field in the mutation.
func (m *ListingMutation) EntityType() (r string, exists bool) {
	v := m.entity_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityType returns the old "entity_type" field's value of the Listing entity.
// If the Listing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingMutation) OldEntityType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityType: %w", err)
	}
	return oldValue.EntityType, nil
}

// ResetEntityType resets all changes to the "entity_type" field.
func (m *ListingMutation) ResetEntityType() {
	m.entity_type = nil
}

// SetName sets the "name" field.
func (m *ListingMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ListingMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Listing entity.
// If the Listing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ListingMutation) ResetName() {
	m.name = nil
}

// SetSlug sets the "slug" field.
func (m *ListingMutation) SetSlug(s string) {
	m.slug = &s
}

// Slug returns the value of the "slug" field in the mutation.
func (m *ListingMutation) Slug() (r string, exists bool) {
	v := m.slug
	if v == nil {
		return
	}
	return *v, true
}

// OldSlug returns the old "slug" field's value of the Listing entity.
// If the Listing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingMutation) OldSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlug: %w", err)
	}
	return oldValue.Slug, nil
}

// ResetSlug resets all changes to the "slug" field.
func (m *ListingMutation) ResetSlug() {
	m.slug = nil
}

// SetGooglePlaceID sets the "google_place_id" field.
func (m *ListingMutation) SetGooglePlaceID(s string) {
	m.google_place_id = &s
}

// GooglePlaceID returns the value of the "google_place_id" field in the mutation.
func (m *ListingMutation) GooglePlaceID() (r string, exists bool) {
	v := m.google_place_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGooglePlaceID returns the old "google_place_id" field's value of the Listing entity.
// If the Listing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingMutation) OldGooglePlaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGooglePlaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGooglePlaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGooglePlaceID: %w", err)
	}
	return oldValue.GooglePlaceID, nil
}

// ClearGooglePlaceID clears the value of the "google_place_id" field.
func (m *ListingMutation) ClearGooglePlaceID() {
	m.google_place_id = nil
	m.clearedFields[listing.FieldGooglePlaceID] = struct{}{}
}

// GooglePlaceIDCleared returns if the "google_place_id" field was cleared in this mutation.
func (m *ListingMutation) GooglePlaceIDCleared() bool {
	_, ok := m.clearedFields[listing.FieldGooglePlaceID]
	return ok
}

// ResetGooglePlaceID resets all changes to the "google_place_id" field.
func (m *ListingMutation) ResetGooglePlaceID() {
	m.google_place_id = nil
	delete(m.clearedFields, listing.FieldGooglePlaceID)
}

// SetAddress sets the "address" field.
func (m *ListingMutation) SetAddress(s string) {
	m.address = &s
}

// Address returns the value of the "address" field in the mutation.
func (m *ListingMutation) Address() (r string, exists bool) {
	v := m.address
	if v == nil {
		return
	}
	return *v, true
}

// OldAddress returns the old "address" field's value of the Listing entity.
// If the Listing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingMutation) OldAddress(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAddress: %w", err)
	}
	return oldValue.Address, nil
}

// ClearAddress clears the value of the "address" field.
func (m *ListingMutation) ClearAddress() {
	m.address = nil
	m.clearedFields[listing.FieldAddress] = struct{}{}
}

// AddressCleared returns if the "address" field was cleared in this mutation.
func (m *ListingMutation) AddressCleared() bool {
	_, ok := m.clearedFields[listing.FieldAddress]
	return ok
}

// ResetAddress resets all changes to the "address" field.
func (m *ListingMutation) ResetAddress() {
	m.address = nil
	delete(m.clearedFields, listing.FieldAddress)
}

// SetArea sets the "area" field.
func (m *ListingMutation) SetArea(s string) {
	m.area = &s
}

// Area returns the value of the "area" field in the mutation.
func (m *ListingMutation) Area() (r string, exists bool) {
	v := m.area
	if v == nil {
		return
	}
	return *v, true
}

// OldArea returns the old "area" field's value of the Listing entity.
// If the Listing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingMutation) OldArea(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArea is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArea requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArea: %w", err)
	}
	return oldValue.Area, nil
}

// ClearArea clears the value of the "area" field.
func (m *ListingMutation) ClearArea() {
	m.area = nil
	m.clearedFields[listing.FieldArea] = struct{}{}
}

// AreaCleared returns if the "area" field was cleared in this mutation.
func (m *ListingMutation) AreaCleared() bool {
	_, ok := m.clearedFields[listing.FieldArea]
	return ok
}

// ResetArea resets all changes to the "area" field.
func (m *ListingMutation) ResetArea() {
	m.area = nil
	delete(m.clearedFields, listing.FieldArea)
}

// SetLatitude sets the "latitude" field.
func (m *ListingMutation) SetLatitude(f float64) {
	m.latitude = &f
	m.addlatitude = nil
}

// Latitude returns the value of the "latitude" field in the mutation.
func (m *ListingMutation) Latitude() (r float64, exists bool) {
	v := m.latitude
	if v == nil {
		return
	}
	return *v, true
}

// OldLatitude returns the old "latitude" field's value of the Listing entity.
// If the Listing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingMutation) OldLatitude(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatitude is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatitude requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatitude: %w", err)
	}
	return oldValue.Latitude, nil
}

// AddLatitude adds f to the "latitude" field.
func (m *ListingMutation) AddLatitude(f float64) {
	if m.addlatitude != nil {
		*m.addlatitude += f
	} else {
		m.addlatitude = &f
	}
}

// AddedLatitude returns the value that was added to the "latitude" field in this mutation.
func (m *ListingMutation) AddedLatitude() (r float64, exists bool) {
	v := m.addlatitude
	if v == nil {
		return
	}
	return *v, true
}

// ClearLatitude clears the value of the "latitude" field.
func (m *ListingMutation) ClearLatitude() {
	m.latitude = nil
	m.addlatitude = nil
	m.clearedFields[listing.FieldLatitude] = struct{}{}
}

// LatitudeCleared returns if the "latitude" field was cleared in this mutation.
func (m *ListingMutation) LatitudeCleared() bool {
	_, ok := m.clearedFields[listing.FieldLatitude]
	return ok
}

// ResetLatitude resets all changes to the "latitude" field.
func (m *ListingMutation) ResetLatitude() {
	m.latitude = nil
	m.addlatitude = nil
	delete(m.clearedFields, listing.FieldLatitude)
}

// SetLongitude sets the "longitude" field.
func (m *ListingMutation) SetLongitude(f float64) {
	m.longitude = &f
	m.addlongitude = nil
}

// Longitude returns the value of the "longitude" field in the mutation.
func (m *ListingMutation) Longitude() (r float64, exists bool) {
	v := m.longitude
	if v == nil {
		return
	}
	return *v, true
}

// OldLongitude returns the old "longitude" field's value of the Listing entity.
// If the Listing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingMutation) OldLongitude(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLongitude is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLongitude requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLongitude: %w", err)
	}
	return oldValue.Longitude, nil
}

// AddLongitude adds f to the "longitude" field.
func (m *ListingMutation) AddLongitude(f float64) {
	if m.addlongitude != nil {
		*m.addlongitude += f
	} else {
		m.addlongitude = &f
	}
}

// AddedLongitude returns the value that was added to the "longitude" field in this mutation.
func (m *ListingMutation) AddedLongitude() (r float64, exists bool) {
	v := m.addlongitude
	if v == nil {
		return
	}
	return *v, true
}

// ClearLongitude clears the value of the "longitude" field.
func (m *ListingMutation) ClearLongitude() {
	m.longitude = nil
	m.addlongitude = nil
	m.clearedFields[listing.FieldLongitude] = struct{}{}
}

// LongitudeCleared returns if the "longitude" field was cleared in this mutation.
func (m *ListingMutation) LongitudeCleared() bool {
	_, ok := m.clearedFields[listing.FieldLongitude]
	return ok
}

// ResetLongitude resets all changes to the "longitude" field.
func (m *ListingMutation) ResetLongitude() {
	m.longitude = nil
	m.addlongitude = nil
	delete(m.clearedFields, listing.FieldLongitude)
}

// SetPhone sets the "phone" field.
func (m *ListingMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *ListingMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the Listing entity.
// If the Listing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingMutation) OldPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *ListingMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[listing.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *ListingMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[listing.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *ListingMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, listing.FieldPhone)
}

// SetEmail sets the "email" field.
func (m *ListingMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *ListingMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Listing entity.
// If the Listing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *ListingMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[listing.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *ListingMutation) EmailCleared() bool {
	_, ok := m.clearedFields[listing.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *ListingMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, listing.FieldEmail)
}

// SetWebsite sets the "website" field.
func (m *ListingMutation) SetWebsite(s string) {
	m.website = &s
}

// Website returns the value of the "website" field in the mutation.
func (m *ListingMutation) Website() (r string, exists bool) {
	v := m.website
	if v == nil {
		return
	}
	return *v, true
}

// OldWebsite returns the old "website" field's value of the Listing entity.
// If the Listing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingMutation) OldWebsite(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWebsite is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWebsite requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWebsite: %w", err)
	}
	return oldValue.Website, nil
}

// ClearWebsite clears the value of the "website" field.
func (m *ListingMutation) ClearWebsite() {
	m.website = nil
	m.clearedFields[listing.FieldWebsite] = struct{}{}
}

// WebsiteCleared returns if the "website" field was cleared in this mutation.
func (m *ListingMutation) WebsiteCleared() bool {
	_, ok := m.clearedFields[listing.FieldWebsite]
	return ok
}

// ResetWebsite resets all changes to the "website" field.
func (m *ListingMutation) ResetWebsite() {
	m.website = nil
	delete(m.clearedFields, listing.FieldWebsite)
}

// SetInstagram sets the "instagram" field.
func (m *ListingMutation) SetInstagram(s string) {
	m.instagram = &s
}

// Instagram returns the value of the "instagram" field in the mutation.
func (m *ListingMutation) Instagram() (r string, exists bool) {
	v := m.instagram
	if v == nil {
		return
	}
	return *v, true
}

// OldInstagram returns the old "instagram" field's value of the Listing entity.
// If the Listing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingMutation) OldInstagram(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstagram is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstagram requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstagram: %w", err)
	}
	return oldValue.Instagram, nil
}

// ClearInstagram clears the value of the "instagram" field.
func (m *ListingMutation) ClearInstagram() {
	m.instagram = nil
	m.clearedFields[listing.FieldInstagram] = struct{}{}
}

// InstagramCleared returns if the "instagram" field was cleared in this mutation.
func (m *ListingMutation) InstagramCleared() bool {
	_, ok := m.clearedFields[listing.FieldInstagram]
	return ok
}

// ResetInstagram resets all changes to the "instagram" field.
func (m *ListingMutation) ResetInstagram() {
	m.instagram = nil
	delete(m.clearedFields, listing.FieldInstagram)
}

// SetFacebook sets the "facebook" field.
func (m *ListingMutation) SetFacebook(s string) {
	m.facebook = &s
}

// Facebook returns the value of the "facebook" field in the mutation.
func (m *ListingMutation) Facebook() (r string, exists bool) {
	v := m.facebook
	if v == nil {
		return
	}
	return *v, true
}

// OldFacebook returns the old "facebook" field's value of the Listing entity.
// If the Listing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingMutation) OldFacebook(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFacebook is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFacebook requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFacebook: %w", err)
	}
	return oldValue.Facebook, nil
}

// ClearFacebook clears the value of the "facebook" field.
func (m *ListingMutation) ClearFacebook() {
	m.facebook = nil
	m.clearedFields[listing.FieldFacebook] = struct{}{}
}

// FacebookCleared returns if the "facebook" field was cleared in this mutation.
func (m *ListingMutation) FacebookCleared() bool {
	_, ok := m.clearedFields[listing.FieldFacebook]
	return ok
}

// ResetFacebook resets all changes to the "facebook" field.
func (m *ListingMutation) ResetFacebook() {
	m.facebook = nil
	delete(m.clearedFields, listing.FieldFacebook)
}

// SetDescription sets the "description" field.
func (m *ListingMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ListingMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Listing entity.
// If the Listing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ListingMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[listing.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ListingMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[listing.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ListingMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, listing.FieldDescription)
}

// SetShortDescription sets the "short_description" field.
func (m *ListingMutation) SetShortDescription(s string) {
	m.short_description = &s
}

// ShortDescription returns the value of the "short_description" field in the mutation.
func (m *ListingMutation) ShortDescription() (r string, exists bool) {
	v := m.short_description
	if v == nil {
		return
	}
	return *v, true
}

// OldShortDescription returns the old "short_description" field's value of the Listing entity.
// If the Listing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingMutation) OldShortDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldShortDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldShortDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldShortDescription: %w", err)
	}
	return oldValue.ShortDescription, nil
}

// ClearShortDescription clears the value of the "short_description" field.
func (m *ListingMutation) ClearShortDescription() {
	m.short_description = nil
	m.clearedFields[listing.FieldShortDescription] = struct{}{}
}

// ShortDescriptionCleared returns if the "short_description" field was cleared in this mutation.
func (m *ListingMutation) ShortDescriptionCleared() bool {
	_, ok := m.clearedFields[listing.FieldShortDescription]
	return ok
}

// ResetShortDescription resets all changes to the "short_description" field.
func (m *ListingMutation) ResetShortDescription() {
	m.short_description = nil
	delete(m.clearedFields, listing.FieldShortDescription)
}

// SetMetaTitle sets the "meta_title" field.
func (m *ListingMutation) SetMetaTitle(s string) {
	m.meta_title = &s
}

// MetaTitle returns the value of the "meta_title" field in the mutation.
func (m *ListingMutation) MetaTitle() (r string, exists bool) {
	v := m.meta_title
	if v == nil {
		return
	}
	return *v, true
}

// OldMetaTitle returns the old "meta_title" field's value of the Listing entity.
// If the Listing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingMutation) OldMetaTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetaTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetaTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetaTitle: %w", err)
	}
	return oldValue.MetaTitle, nil
}

// ClearMetaTitle clears the value of the "meta_title" field.
func (m *ListingMutation) ClearMetaTitle() {
	m.meta_title = nil
	m.clearedFields[listing.FieldMetaTitle] = struct{}{}
}

// MetaTitleCleared returns if the "meta_title" field was cleared in this mutation.
func (m *ListingMutation) MetaTitleCleared() bool {
	_, ok := m.clearedFields[listing.FieldMetaTitle]
	return ok
}

// ResetMetaTitle resets all changes to the "meta_title" field.
func (m *ListingMutation) ResetMetaTitle() {
	m.meta_title = nil
	delete(m.clearedFields, listing.FieldMetaTitle)
}

// SetMetaDescription sets the "meta_description" field.
func (m *ListingMutation) SetMetaDescription(s string) {
	m.meta_description = &s
}

// MetaDescription returns the value of the "meta_description" field in the mutation.
func (m *ListingMutation) MetaDescription() (r string, exists bool) {
	v := m.meta_description
	if v == nil {
		return
	}
	return *v, true
}

// OldMetaDescription returns the old "meta_description" field's value of the Listing entity.
// If the Listing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingMutation) OldMetaDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetaDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetaDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetaDescription: %w", err)
	}
	return oldValue.MetaDescription, nil
}

// ClearMetaDescription clears the value of the "meta_description" field.
func (m *ListingMutation) ClearMetaDescription() {
	m.meta_description = nil
	m.clearedFields[listing.FieldMetaDescription] = struct{}{}
}

// MetaDescriptionCleared returns if the "meta_description" field was cleared in this mutation.
func (m *ListingMutation) MetaDescriptionCleared() bool {
	_, ok := m.clearedFields[listing.FieldMetaDescription]
	return ok
}

// ResetMetaDescription resets all changes to the "meta_description" field.
func (m *ListingMutation) ResetMetaDescription() {
	m.meta_description = nil
	delete(m.clearedFields, listing.FieldMetaDescription)
}

// SetMetaKeywords sets the "meta_keywords" field.
func (m *ListingMutation) SetMetaKeywords(s string) {
	m.meta_keywords = &s
}

// MetaKeywords returns the value of the "meta_keywords" field in the mutation.
func (m *ListingMutation) MetaKeywords() (r string, exists bool) {
	v := m.meta_keywords
	if v == nil {
		return
	}
	return *v, true
}

// OldMetaKeywords returns the old "meta_keywords" field's value of the Listing entity.
// If the Listing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingMutation) OldMetaKeywords(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetaKeywords is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetaKeywords requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetaKeywords: %w", err)
	}
	return oldValue.MetaKeywords, nil
}

// ClearMetaKeywords clears the value of the "meta_keywords" field.
func (m *ListingMutation) ClearMetaKeywords() {
	m.meta_keywords = nil
	m.clearedFields[listing.FieldMetaKeywords] = struct{}{}
}

// MetaKeywordsCleared returns if the "meta_keywords" field was cleared in this mutation.
func (m *ListingMutation) MetaKeywordsCleared() bool {
	_, ok := m.clearedFields[listing.FieldMetaKeywords]
	return ok
}

// ResetMetaKeywords resets all changes to the "meta_keywords" field.
func (m *ListingMutation) ResetMetaKeywords() {
	m.meta_keywords = nil
	delete(m.clearedFields, listing.FieldMetaKeywords)
}

// SetPriceLevel sets the "price_level" field.
func (m *ListingMutation) SetPriceLevel(i int) {
	m.price_level = &i
	m.addprice_level = nil
}

// PriceLevel returns the value of the "price_level" field in the mutation.
func (m *ListingMutation) PriceLevel() (r int, exists bool) {
	v := m.price_level
	if v == nil {
		return
	}
	return *v, true
}

// OldPriceLevel returns the old "price_level" field's value of the Listing entity.
// If the Listing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingMutation) OldPriceLevel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriceLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriceLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriceLevel: %w", err)
	}
	return oldValue.PriceLevel, nil
}

// AddPriceLevel adds i to the "price_level" field.
func (m *ListingMutation) AddPriceLevel(i int) {
	if m.addprice_level != nil {
		*m.addprice_level += i
	} else {
		m.addprice_level = &i
	}
}

// AddedPriceLevel returns the value that was added to the "price_level" field in this mutation.
func (m *ListingMutation) AddedPriceLevel() (r int, exists bool) {
	v := m.addprice_level
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriceLevel resets all changes to the "price_level" field.
func (m *ListingMutation) ResetPriceLevel() {
	m.price_level = nil
	m.addprice_level = nil
}

// SetOpeningHours sets the "opening_hours" field.
func (m *ListingMutation) SetOpeningHours(s string) {
	m.opening_hours = &s
}

// OpeningHours returns the value of the "opening_hours" field in the mutation.
func (m *ListingMutation) OpeningHours() (r string, exists bool) {
	v := m.opening_hours
	if v == nil {
		return
	}
	return *v, true
}

// OldOpeningHours returns the old "opening_hours" field's value of the Listing entity.
// If the Listing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingMutation) OldOpeningHours(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOpeningHours is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOpeningHours requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOpeningHours: %w", err)
	}
	return oldValue.OpeningHours, nil
}

// ClearOpeningHours clears the value of the "opening_hours" field.
func (m *ListingMutation) ClearOpeningHours() {
	m.opening_hours = nil
	m.clearedFields[listing.FieldOpeningHours] = struct{}{}
}

// OpeningHoursCleared returns if the "opening_hours" field was cleared in this mutation.
func (m *ListingMutation) OpeningHoursCleared() bool {
	_, ok := m.clearedFields[listing.FieldOpeningHours]
	return ok
}

// ResetOpeningHours resets all changes to the "opening_hours" field.
func (m *ListingMutation) ResetOpeningHours() {
	m.opening_hours = nil
	delete(m.clearedFields, listing.FieldOpeningHours)
}

// SetRating sets the "rating" field.
func (m *ListingMutation) SetRating(f float64) {
	m.rating = &f
	m.addrating = nil
}

// Rating returns the value of the "rating" field in the mutation.
func (m *ListingMutation) Rating() (r float64, exists bool) {
	v := m.rating
	if v == nil {
		return
	}
	return *v, true
}

// OldRating returns the old "rating" field's value of the Listing entity.
// If the Listing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingMutation) OldRating(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRating is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRating requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRating: %w", err)
	}
	return oldValue.Rating, nil
}

// AddRating adds f to the "rating" field.
func (m *ListingMutation) AddRating(f float64) {
	if m.addrating != nil {
		*m.addrating += f
	} else {
		m.addrating = &f
	}
}

// AddedRating returns the value that was added to the "rating" field in this mutation.
func (m *ListingMutation) AddedRating() (r float64, exists bool) {
	v := m.addrating
	if v == nil {
		return
	}
	return *v, true
}

// ClearRating clears the value of the "rating" field.
func (m *ListingMutation) ClearRating() {
	m.rating = nil
	m.addrating = nil
	m.clearedFields[listing.FieldRating] = struct{}{}
}

// RatingCleared returns if the "rating" field was cleared in this mutation.
func (m *ListingMutation) RatingCleared() bool {
	_, ok := m.clearedFields[listing.FieldRating]
	return ok
}

// ResetRating resets all changes to the "rating" field.
func (m *ListingMutation) ResetRating() {
	m.rating = nil
	m.addrating = nil
	delete(m.clearedFields, listing.FieldRating)
}

// SetReviewCount sets the "review_count" field.
func (m *ListingMutation) SetReviewCount(i int) {
	m.review_count = &i
	m.addreview_count = nil
}

// ReviewCount returns the value of the "review_count" field in the mutation.
func (m *ListingMutation) ReviewCount() (r int, exists bool) {
	v := m.review_count
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewCount returns the old "review_count" field's value of the Listing entity.
// If the Listing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingMutation) OldReviewCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewCount: %w", err)
	}
	return oldValue.ReviewCount, nil
}

// AddReviewCount adds i to the "review_count" field.
func (m *ListingMutation) AddReviewCount(i int) {
	if m.addreview_count != nil {
		*m.addreview_count += i
	} else {
		m.addreview_count = &i
	}
}

// AddedReviewCount returns the value that was added to the "review_count" field in this mutation.
func (m *ListingMutation) AddedReviewCount() (r int, exists bool) {
	v := m.addreview_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetReviewCount resets all changes to the "review_count" field.
func (m *ListingMutation) ResetReviewCount() {
	m.review_count = nil
	m.addreview_count = nil
}

// SetBokScore sets the "bok_score" field.
func (m *ListingMutation) SetBokScore(f float64) {
	m.bok_score = &f
	m.addbok_score = nil
}

// BokScore returns the value of the "bok_score" field in the mutation.
func (m *ListingMutation) BokScore() (r float64, exists bool) {
	v := m.bok_score
	if v == nil {
		return
	}
	return *v, true
}

// OldBokScore returns the old "bok_score" field's value of the Listing entity.
// If the Listing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingMutation) OldBokScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBokScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBokScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBokScore: %w", err)
	}
	return oldValue.BokScore, nil
}

// AddBokScore adds f to the "bok_score" field.
func (m *ListingMutation) AddBokScore(f float64) {
	if m.addbok_score != nil {
		*m.addbok_score += f
	} else {
		m.addbok_score = &f
	}
}

// AddedBokScore returns the value that was added to the "bok_score" field in this mutation.
func (m *ListingMutation) AddedBokScore() (r float64, exists bool) {
	v := m.addbok_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearBokScore clears the value of the "bok_score" field.
func (m *ListingMutation) ClearBokScore() {
	m.bok_score = nil
	m.addbok_score = nil
	m.clearedFields[listing.FieldBokScore] = struct{}{}
}

// BokScoreCleared returns if the "bok_score" field was cleared in this mutation.
func (m *ListingMutation) BokScoreCleared() bool {
	_, ok := m.clearedFields[listing.FieldBokScore]
	return ok
}

// ResetBokScore resets all changes to the "bok_score" field.
func (m *ListingMutation) ResetBokScore() {
	m.bok_score = nil
	m.addbok_score = nil
	delete(m.clearedFields, listing.FieldBokScore)
}

// SetActive sets the "active" field.
func (m *ListingMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *ListingMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the Listing entity.
// If the Listing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *ListingMutation) ResetActive() {
	m.active = nil
}

// SetVerified sets the "verified" field.
func (m *ListingMutation) SetVerified(b bool) {
	m.verified = &b
}

// Verified returns the value of the "verified" field in the mutation.
func (m *ListingMutation) Verified() (r bool, exists bool) {
	v := m.verified
	if v == nil {
		return
	}
	return *v, true
}

// OldVerified returns the old "verified" field's value of the Listing entity.
// If the Listing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingMutation) OldVerified(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerified is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerified requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerified: %w", err)
	}
	return oldValue.Verified, nil
}

// ResetVerified resets all changes to the "verified" field.
func (m *ListingMutation) ResetVerified() {
	m.verified = nil
}

// SetFeatured sets the "featured" field.
func (m *ListingMutation) SetFeatured(b bool) {
	m.featured = &b
}

// Featured returns the value of the "featured" field in the mutation.
func (m *ListingMutation) Featured() (r bool, exists bool) {
	v := m.featured
	if v == nil {
		return
	}
	return *v, true
}

// OldFeatured returns the old "featured" field's value of the Listing entity.
// If the Listing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingMutation) OldFeatured(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeatured is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeatured requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeatured: %w", err)
	}
	return oldValue.Featured, nil
}

// ResetFeatured resets all changes to the "featured" field.
func (m *ListingMutation) ResetFeatured() {
	m.featured = nil
}

// SetApifyOutput sets the "apify_output" field.
func (m *ListingMutation) SetApifyOutput(jm json.RawMessage) {
	m.apify_output = &jm
	m.appendapify_output = nil
}

// ApifyOutput returns the value of the "apify_output" field in the mutation.
func (m *ListingMutation) ApifyOutput() (r json.RawMessage, exists bool) {
	v := m.apify_output
	if v == nil {
		return
	}
	return *v, true
}

// OldApifyOutput returns the old "apify_output" field's value of the Listing entity.
// If the Listing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingMutation) OldApifyOutput(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApifyOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApifyOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApifyOutput: %w", err)
	}
	return oldValue.ApifyOutput, nil
}

// AppendApifyOutput adds jm to the "apify_output" field.
func (m *ListingMutation) AppendApifyOutput(jm json.RawMessage) {
	m.appendapify_output = append(m.appendapify_output, jm...)
}

// AppendedApifyOutput returns the list of values that were appended to the "apify_output" field in this mutation.
func (m *ListingMutation) AppendedApifyOutput() (json.RawMessage, bool) {
	if len(m.appendapify_output) == 0 {
		return nil, false
	}
	return m.appendapify_output, true
}

// ClearApifyOutput clears the value of the "apify_output" field.
func (m *ListingMutation) ClearApifyOutput() {
	m.apify_output = nil
	m.appendapify_output = nil
	m.clearedFields[listing.FieldApifyOutput] = struct{}{}
}

// ApifyOutputCleared returns if the "apify_output" field was cleared in this mutation.
func (m *ListingMutation) ApifyOutputCleared() bool {
	_, ok := m.clearedFields[listing.FieldApifyOutput]
	return ok
}

// ResetApifyOutput resets all changes to the "apify_output" field.
func (m *ListingMutation) ResetApifyOutput() {
	m.apify_output = nil
	m.appendapify_output = nil
	delete(m.clearedFields, listing.FieldApifyOutput)
}

// SetFirecrawlOutput sets the "firecrawl_output" field.
func (m *ListingMutation) SetFirecrawlOutput(jm json.RawMessage) {
	m.firecrawl_output = &jm
	m.appendfirecrawl_output = nil
}

// FirecrawlOutput returns the value of the "firecrawl_output" field in the mutation.
func (m *ListingMutation) FirecrawlOutput() (r json.RawMessage, exists bool) {
	v := m.firecrawl_output
	if v == nil {
		return
	}
	return *v, true
}

// OldFirecrawlOutput returns the old "firecrawl_output" field's value of the Listing entity.
// If the Listing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingMutation) OldFirecrawlOutput(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirecrawlOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirecrawlOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirecrawlOutput: %w", err)
	}
	return oldValue.FirecrawlOutput, nil
}

// AppendFirecrawlOutput adds jm to the "firecrawl_output" field.
func (m *ListingMutation) AppendFirecrawlOutput(jm json.RawMessage) {
	m.appendfirecrawl_output = append(m.appendfirecrawl_output, jm...)
}

// AppendedFirecrawlOutput returns the list of values that were appended to the "firecrawl_output" field in this mutation.
func (m *ListingMutation) AppendedFirecrawlOutput() (json.RawMessage, bool) {
	if len(m.appendfirecrawl_output) == 0 {
		return nil, false
	}
	return m.appendfirecrawl_output, true
}

// ClearFirecrawlOutput clears the value of the "firecrawl_output" field.
func (m *ListingMutation) ClearFirecrawlOutput() {
	m.firecrawl_output = nil
	m.appendfirecrawl_output = nil
	m.clearedFields[listing.FieldFirecrawlOutput] = struct{}{}
}

// FirecrawlOutputCleared returns if the "firecrawl_output" field was cleared in this mutation.
func (m *ListingMutation) FirecrawlOutputCleared() bool {
	_, ok := m.clearedFields[listing.FieldFirecrawlOutput]
	return ok
}

// ResetFirecrawlOutput resets all changes to the "firecrawl_output" field.
func (m *ListingMutation) ResetFirecrawlOutput() {
	m.firecrawl_output = nil
	m.appendfirecrawl_output = nil
	delete(m.clearedFields, listing.FieldFirecrawlOutput)
}

// SetCreatedAt sets the "created_at" field.
func (m *ListingMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ListingMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Listing entity.
// If the Listing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ListingMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ListingMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ListingMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Listing entity.
// If the Listing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ListingMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddImageIDs adds the "images" edge to the ListingImage entity by ids.
func (m *ListingMutation) AddImageIDs(ids ...uuid.UUID) {
	if m.images == nil {
		m.images = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.images[ids[i]] = struct{}{}
	}
}

// ClearImages clears the "images" edge to the ListingImage entity.
func (m *ListingMutation) ClearImages() {
	m.clearedimages = true
}

// ImagesCleared reports if the "images" edge to the ListingImage entity was cleared.
func (m *ListingMutation) ImagesCleared() bool {
	return m.clearedimages
}

// RemoveImageIDs removes the "images" edge to the ListingImage entity by IDs.
func (m *ListingMutation) RemoveImageIDs(ids ...uuid.UUID) {
	if m.removedimages == nil {
		m.removedimages = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.images, ids[i])
		m.removedimages[ids[i]] = struct{}{}
	}
}

// RemovedImages returns the removed IDs of the "images" edge to the ListingImage entity.
func (m *ListingMutation) RemovedImagesIDs() (ids []uuid.UUID) {
	for id := range m.removedimages {
		ids = append(ids, id)
	}
	return
}

// ImagesIDs returns the "images" edge IDs in the mutation.
func (m *ListingMutation) ImagesIDs() (ids []uuid.UUID) {
	for id := range m.images {
		ids = append(ids, id)
	}
	return
}

// ResetImages resets all changes to the "images" edge.
func (m *ListingMutation) ResetImages() {
	m.images = nil
	m.clearedimages = false
	m.removedimages = nil
}

// AddFaqIDs adds the "faqs" edge to the FAQ entity by ids.
func (m *ListingMutation) AddFaqIDs(ids ...uuid.UUID) {
	if m.faqs == nil {
		m.faqs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.faqs[ids[i]] = struct{}{}
	}
}

// ClearFaqs clears the "faqs" edge to the FAQ entity.
func (m *ListingMutation) ClearFaqs() {
	m.clearedfaqs = true
}

// FaqsCleared reports if the "faqs" edge to the FAQ entity was cleared.
func (m *ListingMutation) FaqsCleared() bool {
	return m.clearedfaqs
}

// RemoveFaqIDs removes the "faqs" edge to the FAQ entity by IDs.
func (m *ListingMutation) RemoveFaqIDs(ids ...uuid.UUID) {
	if m.removedfaqs == nil {
		m.removedfaqs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.faqs, ids[i])
		m.removedfaqs[ids[i]] = struct{}{}
	}
}

// RemovedFaqs returns the removed IDs of the "faqs" edge to the FAQ entity.
func (m *ListingMutation) RemovedFaqsIDs() (ids []uuid.UUID) {
	for id := range m.removedfaqs {
		ids = append(ids, id)
	}
	return
}

// FaqsIDs returns the "faqs" edge IDs in the mutation.
func (m *ListingMutation) FaqsIDs() (ids []uuid.UUID) {
	for id := range m.faqs {
		ids = append(ids, id)
	}
	return
}

// ResetFaqs resets all changes to the "faqs" edge.
func (m *ListingMutation) ResetFaqs() {
	m.faqs = nil
	m.clearedfaqs = false
	m.removedfaqs = nil
}

// AddAttributeIDs adds the "attributes" edge to the Attribute entity by ids.
func (m *ListingMutation) AddAttributeIDs(ids ...int) {
	if m.attributes == nil {
		m.attributes = make(map[int]struct{})
	}
	for i := range ids {
		m.attributes[ids[i]] = struct{}{}
	}
}

// ClearAttributes clears the "attributes" edge to the Attribute entity.
func (m *ListingMutation) ClearAttributes() {
	m.clearedattributes = true
}

// AttributesCleared reports if the "attributes" edge to the Attribute entity was cleared.
func (m *ListingMutation) AttributesCleared() bool {
	return m.clearedattributes
}

// RemoveAttributeIDs removes the "attributes" edge to the Attribute entity by IDs.
func (m *ListingMutation) RemoveAttributeIDs(ids ...int) {
	if m.removedattributes == nil {
		m.removedattributes = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.attributes, ids[i])
		m.removedattributes[ids[i]] = struct{}{}
	}
}

// RemovedAttributes returns the removed IDs of the "attributes" edge to the Attribute entity.
func (m *ListingMutation) RemovedAttributesIDs() (ids []int) {
	for id := range m.removedattributes {
		ids = append(ids, id)
	}
	return
}

// AttributesIDs returns the "attributes" edge IDs in the mutation.
func (m *ListingMutation) AttributesIDs() (ids []int) {
	for id := range m.attributes {
		ids = append(ids, id)
	}
	return
}

// ResetAttributes resets all changes to the "attributes" edge.
func (m *ListingMutation) ResetAttributes() {
	m.attributes = nil
	m.clearedattributes = false
	m.removedattributes = nil
}

// Where appends a list predicates to the ListingMutation builder.
func (m *ListingMutation) Where(ps ...predicate.Listing) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ListingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ListingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Listing, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ListingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ListingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Listing).
func (m *ListingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ListingMutation) Fields() []string {
	fields := make([]string, 0, 30)
	if m.entity_type != nil {
		fields = append(fields, listing.FieldEntityType)
	}
	if m.name != nil {
		fields = append(fields, listing.FieldName)
	}
	if m.slug != nil {
		fields = append(fields, listing.FieldSlug)
	}
	if m.google_place_id != nil {
		fields = append(fields, listing.FieldGooglePlaceID)
	}
	if m.address != nil {
		fields = append(fields, listing.FieldAddress)
	}
	if m.area != nil {
		fields = append(fields, listing.FieldArea)
	}
	if m.latitude != nil {
		fields = append(fields, listing.FieldLatitude)
	}
	if m.longitude != nil {
		fields = append(fields, listing.FieldLongitude)
	}
	if m.phone != nil {
		fields = append(fields, listing.FieldPhone)
	}
	if m.email != nil {
		fields = append(fields, listing.FieldEmail)
	}
	if m.website != nil {
		fields = append(fields, listing.FieldWebsite)
	}
	if m.instagram != nil {
		fields = append(fields, listing.FieldInstagram)
	}
	if m.facebook != nil {
		fields = append(fields, listing.FieldFacebook)
	}
	if m.description != nil {
		fields = append(fields, listing.FieldDescription)
	}
	if m.short_description != nil {
		fields = append(fields, listing.FieldShortDescription)
	}
	if m.meta_title != nil {
		fields = append(fields, listing.FieldMetaTitle)
	}
	if m.meta_description != nil {
		fields = append(fields, listing.FieldMetaDescription)
	}
	if m.meta_keywords != nil {
		fields = append(fields, listing.FieldMetaKeywords)
	}
	if m.price_level != nil {
		fields = append(fields, listing.FieldPriceLevel)
	}
	if m.opening_hours != nil {
		fields = append(fields, listing.FieldOpeningHours)
	}
	if m.rating != nil {
		fields = append(fields, listing.FieldRating)
	}
	if m.review_count != nil {
		fields = append(fields, listing.FieldReviewCount)
	}
	if m.bok_score != nil {
		fields = append(fields, listing.FieldBokScore)
	}
	if m.active != nil {
		fields = append(fields, listing.FieldActive)
	}
	if m.verified != nil {
		fields = append(fields, listing.FieldVerified)
	}
	if m.featured != nil {
		fields = append(fields, listing.FieldFeatured)
	}
	if m.apify_output != nil {
		fields = append(fields, listing.FieldApifyOutput)
	}
	if m.firecrawl_output != nil {
		fields = append(fields, listing.FieldFirecrawlOutput)
	}
	if m.created_at != nil {
		fields = append(fields, listing.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, listing.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ListingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case listing.FieldEntityType:
		return m.EntityType()
	case listing.FieldName:
		return m.Name()
	case listing.FieldSlug:
		return m.Slug()
	case listing.FieldGooglePlaceID:
		return m.GooglePlaceID()
	case listing.FieldAddress:
		return m.Address()
	case listing.FieldArea:
		return m.Area()
	case listing.FieldLatitude:
		return m.Latitude()
	case listing.FieldLongitude:
		return m.Longitude()
	case listing.FieldPhone:
		return m.Phone()
	case listing.FieldEmail:
		return m.Email()
	case listing.FieldWebsite:
		return m.Website()
	case listing.FieldInstagram:
		return m.Instagram()
	case listing.FieldFacebook:
		return m.Facebook()
	case listing.FieldDescription:
		return m.Description()
	case listing.FieldShortDescription:
		return m.ShortDescription()
	case listing.FieldMetaTitle:
		return m.MetaTitle()
	case listing.FieldMetaDescription:
		return m.MetaDescription()
	case listing.FieldMetaKeywords:
		return m.MetaKeywords()
	case listing.FieldPriceLevel:
		return m.PriceLevel()
	case listing.FieldOpeningHours:
		return m.OpeningHours()
	case listing.FieldRating:
		return m.Rating()
	case listing.FieldReviewCount:
		return m.ReviewCount()
	case listing.FieldBokScore:
		return m.BokScore()
	case listing.FieldActive:
		return m.Active()
	case listing.FieldVerified:
		return m.Verified()
	case listing.FieldFeatured:
		return m.Featured()
	case listing.FieldApifyOutput:
		return m.ApifyOutput()
	case listing.FieldFirecrawlOutput:
		return m.FirecrawlOutput()
	case listing.FieldCreatedAt:
		return m.CreatedAt()
	case listing.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ListingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case listing.FieldEntityType:
		return m.OldEntityType(ctx)
	case listing.FieldName:
		return m.OldName(ctx)
	case listing.FieldSlug:
		return m.OldSlug(ctx)
	case listing.FieldGooglePlaceID:
		return m.OldGooglePlaceID(ctx)
	case listing.FieldAddress:
		return m.OldAddress(ctx)
	case listing.FieldArea:
		return m.OldArea(ctx)
	case listing.FieldLatitude:
		return m.OldLatitude(ctx)
	case listing.FieldLongitude:
		return m.OldLongitude(ctx)
	case listing.FieldPhone:
		return m.OldPhone(ctx)
	case listing.FieldEmail:
		return m.OldEmail(ctx)
	case listing.FieldWebsite:
		return m.OldWebsite(ctx)
	case listing.FieldInstagram:
		return m.OldInstagram(ctx)
	case listing.FieldFacebook:
		return m.OldFacebook(ctx)
	case listing.FieldDescription:
		return m.OldDescription(ctx)
	case listing.FieldShortDescription:
		return m.OldShortDescription(ctx)
	case listing.FieldMetaTitle:
		return m.OldMetaTitle(ctx)
	case listing.FieldMetaDescription:
		return m.OldMetaDescription(ctx)
	case listing.FieldMetaKeywords:
		return m.OldMetaKeywords(ctx)
	case listing.FieldPriceLevel:
		return m.OldPriceLevel(ctx)
	case listing.FieldOpeningHours:
		return m.OldOpeningHours(ctx)
	case listing.FieldRating:
		return m.OldRating(ctx)
	case listing.FieldReviewCount:
		return m.OldReviewCount(ctx)
	case listing.FieldBokScore:
		return m.OldBokScore(ctx)
	case listing.FieldActive:
		return m.OldActive(ctx)
	case listing.FieldVerified:
		return m.OldVerified(ctx)
	case listing.FieldFeatured:
		return m.OldFeatured(ctx)
	case listing.FieldApifyOutput:
		return m.OldApifyOutput(ctx)
	case listing.FieldFirecrawlOutput:
		return m.OldFirecrawlOutput(ctx)
	case listing.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case listing.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Listing field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ListingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case listing.FieldEntityType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityType(v)
		return nil
	case listing.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case listing.FieldSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlug(v)
		return nil
	case listing.FieldGooglePlaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGooglePlaceID(v)
		return nil
	case listing.FieldAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAddress(v)
		return nil
	case listing.FieldArea:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArea(v)
		return nil
	case listing.FieldLatitude:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatitude(v)
		return nil
	case listing.FieldLongitude:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLongitude(v)
		return nil
	case listing.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case listing.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case listing.FieldWebsite:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWebsite(v)
		return nil
	case listing.FieldInstagram:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstagram(v)
		return nil
	case listing.FieldFacebook:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFacebook(v)
		return nil
	case listing.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case listing.FieldShortDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetShortDescription(v)
		return nil
	case listing.FieldMetaTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetaTitle(v)
		return nil
	case listing.FieldMetaDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetaDescription(v)
		return nil
	case listing.FieldMetaKeywords:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetaKeywords(v)
		return nil
	case listing.FieldPriceLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriceLevel(v)
		return nil
	case listing.FieldOpeningHours:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOpeningHours(v)
		return nil
	case listing.FieldRating:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRating(v)
		return nil
	case listing.FieldReviewCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewCount(v)
		return nil
	case listing.FieldBokScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBokScore(v)
		return nil
	case listing.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case listing.FieldVerified:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerified(v)
		return nil
	case listing.FieldFeatured:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeatured(v)
		return nil
	case listing.FieldApifyOutput:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApifyOutput(v)
		return nil
	case listing.FieldFirecrawlOutput:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirecrawlOutput(v)
		return nil
	case listing.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case listing.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Listing field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ListingMutation) AddedFields() []string {
	var fields []string
	if m.addlatitude != nil {
		fields = append(fields, listing.FieldLatitude)
	}
	if m.addlongitude != nil {
		fields = append(fields, listing.FieldLongitude)
	}
	if m.addprice_level != nil {
		fields = append(fields, listing.FieldPriceLevel)
	}
	if m.addrating != nil {
		fields = append(fields, listing.FieldRating)
	}
	if m.addreview_count != nil {
		fields = append(fields, listing.FieldReviewCount)
	}
	if m.addbok_score != nil {
		fields = append(fields, listing.FieldBokScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ListingMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case listing.FieldLatitude:
		return m.AddedLatitude()
	case listing.FieldLongitude:
		return m.AddedLongitude()
	case listing.FieldPriceLevel:
		return m.AddedPriceLevel()
	case listing.FieldRating:
		return m.AddedRating()
	case listing.FieldReviewCount:
		return m.AddedReviewCount()
	case listing.FieldBokScore:
		return m.AddedBokScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ListingMutation) AddField(name string, value ent.Value) error {
	switch name {
	case listing.FieldLatitude:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatitude(v)
		return nil
	case listing.FieldLongitude:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLongitude(v)
		return nil
	case listing.FieldPriceLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriceLevel(v)
		return nil
	case listing.FieldRating:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRating(v)
		return nil
	case listing.FieldReviewCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReviewCount(v)
		return nil
	case listing.FieldBokScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBokScore(v)
		return nil
	}
	return fmt.Errorf("unknown Listing numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ListingMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(listing.FieldGooglePlaceID) {
		fields = append(fields, listing.FieldGooglePlaceID)
	}
	if m.FieldCleared(listing.FieldAddress) {
		fields = append(fields, listing.FieldAddress)
	}
	if m.FieldCleared(listing.FieldArea) {
		fields = append(fields, listing.FieldArea)
	}
	if m.FieldCleared(listing.FieldLatitude) {
		fields = append(fields, listing.FieldLatitude)
	}
	if m.FieldCleared(listing.FieldLongitude) {
		fields = append(fields, listing.FieldLongitude)
	}
	if m.FieldCleared(listing.FieldPhone) {
		fields = append(fields, listing.FieldPhone)
	}
	if m.FieldCleared(listing.FieldEmail) {
		fields = append(fields, listing.FieldEmail)
	}
	if m.FieldCleared(listing.FieldWebsite) {
		fields = append(fields, listing.FieldWebsite)
	}
	if m.FieldCleared(listing.FieldInstagram) {
		fields = append(fields, listing.FieldInstagram)
	}
	if m.FieldCleared(listing.FieldFacebook) {
		fields = append(fields, listing.FieldFacebook)
	}
	if m.FieldCleared(listing.FieldDescription) {
		fields = append(fields, listing.FieldDescription)
	}
	if m.FieldCleared(listing.FieldShortDescription) {
		fields = append(fields, listing.FieldShortDescription)
	}
	if m.FieldCleared(listing.FieldMetaTitle) {
		fields = append(fields, listing.FieldMetaTitle)
	}
	if m.FieldCleared(listing.FieldMetaDescription) {
		fields = append(fields, listing.FieldMetaDescription)
	}
	if m.FieldCleared(listing.FieldMetaKeywords) {
		fields = append(fields, listing.FieldMetaKeywords)
	}
	if m.FieldCleared(listing.FieldOpeningHours) {
		fields = append(fields, listing.FieldOpeningHours)
	}
	if m.FieldCleared(listing.FieldRating) {
		fields = append(fields, listing.FieldRating)
	}
	if m.FieldCleared(listing.FieldBokScore) {
		fields = append(fields, listing.FieldBokScore)
	}
	if m.FieldCleared(listing.FieldApifyOutput) {
		fields = append(fields, listing.FieldApifyOutput)
	}
	if m.FieldCleared(listing.FieldFirecrawlOutput) {
		fields = append(fields, listing.FieldFirecrawlOutput)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ListingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ListingMutation) ClearField(name string) error {
	switch name {
	case listing.FieldGooglePlaceID:
		m.ClearGooglePlaceID()
		return nil
	case listing.FieldAddress:
		m.ClearAddress()
		return nil
	case listing.FieldArea:
		m.ClearArea()
		return nil
	case listing.FieldLatitude:
		m.ClearLatitude()
		return nil
	case listing.FieldLongitude:
		m.ClearLongitude()
		return nil
	case listing.FieldPhone:
		m.ClearPhone()
		return nil
	case listing.FieldEmail:
		m.ClearEmail()
		return nil
	case listing.FieldWebsite:
		m.ClearWebsite()
		return nil
	case listing.FieldInstagram:
		m.ClearInstagram()
		return nil
	case listing.FieldFacebook:
		m.ClearFacebook()
		return nil
	case listing.FieldDescription:
		m.ClearDescription()
		return nil
	case listing.FieldShortDescription:
		m.ClearShortDescription()
		return nil
	case listing.FieldMetaTitle:
		m.ClearMetaTitle()
		return nil
	case listing.FieldMetaDescription:
		m.ClearMetaDescription()
		return nil
	case listing.FieldMetaKeywords:
		m.ClearMetaKeywords()
		return nil
	case listing.FieldOpeningHours:
		m.ClearOpeningHours()
		return nil
	case listing.FieldRating:
		m.ClearRating()
		return nil
	case listing.FieldBokScore:
		m.ClearBokScore()
		return nil
	case listing.FieldApifyOutput:
		m.ClearApifyOutput()
		return nil
	case listing.FieldFirecrawlOutput:
		m.ClearFirecrawlOutput()
		return nil
	}
	return fmt.Errorf("unknown Listing nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ListingMutation) ResetField(name string) error {
	switch name {
	case listing.FieldEntityType:
		m.ResetEntityType()
		return nil
	case listing.FieldName:
		m.ResetName()
		return nil
	case listing.FieldSlug:
		m.ResetSlug()
		return nil
	case listing.FieldGooglePlaceID:
		m.ResetGooglePlaceID()
		return nil
	case listing.FieldAddress:
		m.ResetAddress()
		return nil
	case listing.FieldArea:
		m.ResetArea()
		return nil
	case listing.FieldLatitude:
		m.ResetLatitude()
		return nil
	case listing.FieldLongitude:
		m.ResetLongitude()
		return nil
	case listing.FieldPhone:
		m.ResetPhone()
		return nil
	case listing.FieldEmail:
		m.ResetEmail()
		return nil
	case listing.FieldWebsite:
		m.ResetWebsite()
		return nil
	case listing.FieldInstagram:
		m.ResetInstagram()
		return nil
	case listing.FieldFacebook:
		m.ResetFacebook()
		return nil
	case listing.FieldDescription:
		m.ResetDescription()
		return nil
	case listing.FieldShortDescription:
		m.ResetShortDescription()
		return nil
	case listing.FieldMetaTitle:
		m.ResetMetaTitle()
		return nil
	case listing.FieldMetaDescription:
		m.ResetMetaDescription()
		return nil
	case listing.FieldMetaKeywords:
		m.ResetMetaKeywords()
		return nil
	case listing.FieldPriceLevel:
		m.ResetPriceLevel()
		return nil
	case listing.FieldOpeningHours:
		m.ResetOpeningHours()
		return nil
	case listing.FieldRating:
		m.ResetRating()
		return nil
	case listing.FieldReviewCount:
		m.ResetReviewCount()
		return nil
	case listing.FieldBokScore:
		m.ResetBokScore()
		return nil
	case listing.FieldActive:
		m.ResetActive()
		return nil
	case listing.FieldVerified:
		m.ResetVerified()
		return nil
	case listing.FieldFeatured:
		m.ResetFeatured()
		return nil
	case listing.FieldApifyOutput:
		m.ResetApifyOutput()
		return nil
	case listing.FieldFirecrawlOutput:
		m.ResetFirecrawlOutput()
		return nil
	case listing.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case listing.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Listing field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ListingMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.images != nil {
		edges = append(edges, listing.EdgeImages)
	}
	if m.faqs != nil {
		edges = append(edges, listing.EdgeFaqs)
	}
	if m.attributes != nil {
		edges = append(edges, listing.EdgeAttributes)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ListingMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case listing.EdgeImages:
		ids := make([]ent.Value, 0, len(m.images))
		for id := range m.images {
			ids = append(ids, id)
		}
		return ids
	case listing.EdgeFaqs:
		ids := make([]ent.Value, 0, len(m.faqs))
		for id := range m.faqs {
			ids = append(ids, id)
		}
		return ids
	case listing.EdgeAttributes:
		ids := make([]ent.Value, 0, len(m.attributes))
		for id := range m.attributes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ListingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedimages != nil {
		edges = append(edges, listing.EdgeImages)
	}
	if m.removedfaqs != nil {
		edges = append(edges, listing.EdgeFaqs)
	}
	if m.removedattributes != nil {
		edges = append(edges, listing.EdgeAttributes)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ListingMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case listing.EdgeImages:
		ids := make([]ent.Value, 0, len(m.removedimages))
		for id := range m.removedimages {
			ids = append(ids, id)
		}
		return ids
	case listing.EdgeFaqs:
		ids := make([]ent.Value, 0, len(m.removedfaqs))
		for id := range m.removedfaqs {
			ids = append(ids, id)
		}
		return ids
	case listing.EdgeAttributes:
		ids := make([]ent.Value, 0, len(m.removedattributes))
		for id := range m.removedattributes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ListingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedimages {
		edges = append(edges, listing.EdgeImages)
	}
	if m.clearedfaqs {
		edges = append(edges, listing.EdgeFaqs)
	}
	if m.clearedattributes {
		edges = append(edges, listing.EdgeAttributes)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ListingMutation) EdgeCleared(name string) bool {
	switch name {
	case listing.EdgeImages:
		return m.clearedimages
	case listing.EdgeFaqs:
		return m.clearedfaqs
	case listing.EdgeAttributes:
		return m.clearedattributes
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ListingMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Listing unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ListingMutation) ResetEdge(name string) error {
	switch name {
	case listing.EdgeImages:
		m.ResetImages()
		return nil
	case listing.EdgeFaqs:
		m.ResetFaqs()
		return nil
	case listing.EdgeAttributes:
		m.ResetAttributes()
		return nil
	}
	return fmt.Errorf("unknown Listing edge %s", name)
}

// ListingImageMutation represents an operation that mutates the ListingImage nodes in the graph.
type ListingImageMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	url              *string
	alt_text         *string
	status           *string
	is_hero          *bool
	display_order    *int
	adddisplay_order *int
	created_at       *time.Time
	clearedFields    map[string]struct{}
	listing          *uuid.UUID
	clearedlisting   bool
	done             bool
	oldValue         func(context.Context) (*ListingImage, error)
	predicates       []predicate.ListingImage
}

var _ ent.Mutation = (*ListingImageMutation)(nil)

// listingimageOption allows management of the mutation configuration using functional options.
type listingimageOption func(*ListingImageMutation)

// newListingImageMutation creates new mutation for the ListingImage entity.
func newListingImageMutation(c config, op Op, opts ...listingimageOption) *ListingImageMutation {
	m := &ListingImageMutation{
		config:        c,
		op:            op,
		typ:           TypeListingImage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withListingImageID sets the ID field of the mutation.
func withListingImageID(id uuid.UUID) listingimageOption {
	return func(m *ListingImageMutation) {
		var (
			err   error
			once  sync.Once
			value *ListingImage
		)
		m.oldValue = func(ctx context.Context) (*ListingImage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ListingImage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withListingImage sets the old ListingImage of the mutation.
func withListingImage(node *ListingImage) listingimageOption {
	return func(m *ListingImageMutation) {
		m.oldValue = func(context.Context) (*ListingImage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ListingImageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ListingImageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ListingImage entities.
func (m *ListingImageMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ListingImageMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ListingImageMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ListingImage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetListingID sets the "listing_id" field.
func (m *ListingImageMutation) SetListingID(u uuid.UUID) {
	m.listing = &u
}

// ListingID returns the value of the "listing_id" field in the mutation.
func (m *ListingImageMutation) ListingID() (r uuid.UUID, exists bool) {
	v := m.listing
	if v == nil {
		return
	}
	return *v, true
}

// OldListingID returns the old "listing_id" field's value of the ListingImage entity.
// If the ListingImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingImageMutation) OldListingID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldListingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldListingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldListingID: %w", err)
	}
	return oldValue.ListingID, nil
}

// ResetListingID resets all changes to the "listing_id" field.
func (m *ListingImageMutation) ResetListingID() {
	m.listing = nil
}

// SetURL sets the "url" field.
func (m *ListingImageMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *ListingImageMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the ListingImage entity.
// If the ListingImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingImageMutation) OldURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ResetURL resets all changes to the "url" field.
func (m *ListingImageMutation) ResetURL() {
	m.url = nil
}

// SetAltText sets the "alt_text" field.
func (m *ListingImageMutation) SetAltText(s string) {
	m.alt_text = &s
}

// AltText returns the value of the "alt_text" field in the mutation.
func (m *ListingImageMutation) AltText() (r string, exists bool) {
	v := m.alt_text
	if v == nil {
		return
	}
	return *v, true
}

// OldAltText returns the old "alt_text" field's value of the ListingImage entity.
// If the ListingImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingImageMutation) OldAltText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAltText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAltText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAltText: %w", err)
	}
	return oldValue.AltText, nil
}

// ClearAltText clears the value of the "alt_text" field.
func (m *ListingImageMutation) ClearAltText() {
	m.alt_text = nil
	m.clearedFields[listingimage.FieldAltText] = struct{}{}
}

// AltTextCleared returns if the "alt_text" field was cleared in this mutation.
func (m *ListingImageMutation) AltTextCleared() bool {
	_, ok := m.clearedFields[listingimage.FieldAltText]
	return ok
}

// ResetAltText resets all changes to the "alt_text" field.
func (m *ListingImageMutation) ResetAltText() {
	m.alt_text = nil
	delete(m.clearedFields, listingimage.FieldAltText)
}

// SetStatus sets the "status" field.
func (m *ListingImageMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ListingImageMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ListingImage entity.
// If the ListingImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingImageMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ListingImageMutation) ResetStatus() {
	m.status = nil
}

// SetIsHero sets the "is_hero" field.
func (m *ListingImageMutation) SetIsHero(b bool) {
	m.is_hero = &b
}

// IsHero returns the value of the "is_hero" field in the mutation.
func (m *ListingImageMutation) IsHero() (r bool, exists bool) {
	v := m.is_hero
	if v == nil {
		return
	}
	return *v, true
}

// OldIsHero returns the old "is_hero" field's value of the ListingImage entity.
// If the ListingImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingImageMutation) OldIsHero(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsHero is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsHero requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsHero: %w", err)
	}
	return oldValue.IsHero, nil
}

// ResetIsHero resets all changes to the "is_hero" field.
func (m *ListingImageMutation) ResetIsHero() {
	m.is_hero = nil
}

// SetDisplayOrder sets the "display_order" field.
func (m *ListingImageMutation) SetDisplayOrder(i int) {
	m.display_order = &i
	m.adddisplay_order = nil
}

// DisplayOrder returns the value of the "display_order" field in the mutation.
func (m *ListingImageMutation) DisplayOrder() (r int, exists bool) {
	v := m.display_order
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayOrder returns the old "display_order" field's value of the ListingImage entity.
// If the ListingImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingImageMutation) OldDisplayOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayOrder: %w", err)
	}
	return oldValue.DisplayOrder, nil
}

// AddDisplayOrder adds i to the "display_order" field.
func (m *ListingImageMutation) AddDisplayOrder(i int) {
	if m.adddisplay_order != nil {
		*m.adddisplay_order += i
	} else {
		m.adddisplay_order = &i
	}
}

// AddedDisplayOrder returns the value that was added to the "display_order" field in this mutation.
func (m *ListingImageMutation) AddedDisplayOrder() (r int, exists bool) {
	v := m.adddisplay_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetDisplayOrder resets all changes to the "display_order" field.
func (m *ListingImageMutation) ResetDisplayOrder() {
	m.display_order = nil
	m.adddisplay_order = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ListingImageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ListingImageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ListingImage entity.
// If the ListingImage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ListingImageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ListingImageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearListing clears the "listing" edge to the Listing entity.
func (m *ListingImageMutation) ClearListing() {
	m.clearedlisting = true
	m.clearedFields[listingimage.FieldListingID] = struct{}{}
}

// ListingCleared reports if the "listing" edge to the Listing entity was cleared.
func (m *ListingImageMutation) ListingCleared() bool {
	return m.clearedlisting
}

// ListingIDs returns the "listing" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ListingID instead. It exists only for internal usage by the builders.
func (m *ListingImageMutation) ListingIDs() (ids []uuid.UUID) {
	if id := m.listing; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetListing resets all changes to the "listing" edge.
func (m *ListingImageMutation) ResetListing() {
	m.listing = nil
	m.clearedlisting = false
}

// Where appends a list predicates to the ListingImageMutation builder.
func (m *ListingImageMutation) Where(ps ...predicate.ListingImage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ListingImageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ListingImageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ListingImage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ListingImageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ListingImageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ListingImage).
func (m *ListingImageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ListingImageMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.listing != nil {
		fields = append(fields, listingimage.FieldListingID)
	}
	if m.url != nil {
		fields = append(fields, listingimage.FieldURL)
	}
	if m.alt_text != nil {
		fields = append(fields, listingimage.FieldAltText)
	}
	if m.status != nil {
		fields = append(fields, listingimage.FieldStatus)
	}
	if m.is_hero != nil {
		fields = append(fields, listingimage.FieldIsHero)
	}
	if m.display_order != nil {
		fields = append(fields, listingimage.FieldDisplayOrder)
	}
	if m.created_at != nil {
		fields = append(fields, listingimage.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ListingImageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case listingimage.FieldListingID:
		return m.ListingID()
	case listingimage.FieldURL:
		return m.URL()
	case listingimage.FieldAltText:
		return m.AltText()
	case listingimage.FieldStatus:
		return m.Status()
	case listingimage.FieldIsHero:
		return m.IsHero()
	case listingimage.FieldDisplayOrder:
		return m.DisplayOrder()
	case listingimage.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ListingImageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case listingimage.FieldListingID:
		return m.OldListingID(ctx)
	case listingimage.FieldURL:
		return m.OldURL(ctx)
	case listingimage.FieldAltText:
		return m.OldAltText(ctx)
	case listingimage.FieldStatus:
		return m.OldStatus(ctx)
	case listingimage.FieldIsHero:
		return m.OldIsHero(ctx)
	case listingimage.FieldDisplayOrder:
		return m.OldDisplayOrder(ctx)
	case listingimage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ListingImage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ListingImageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case listingimage.FieldListingID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetListingID(v)
		return nil
	case listingimage.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case listingimage.FieldAltText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAltText(v)
		return nil
	case listingimage.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case listingimage.FieldIsHero:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsHero(v)
		return nil
	case listingimage.FieldDisplayOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayOrder(v)
		return nil
	case listingimage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ListingImage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ListingImageMutation) AddedFields() []string {
	var fields []string
	if m.adddisplay_order != nil {
		fields = append(fields, listingimage.FieldDisplayOrder)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ListingImageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case listingimage.FieldDisplayOrder:
		return m.AddedDisplayOrder()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ListingImageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case listingimage.FieldDisplayOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDisplayOrder(v)
		return nil
	}
	return fmt.Errorf("unknown ListingImage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ListingImageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(listingimage.FieldAltText) {
		fields = append(fields, listingimage.FieldAltText)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ListingImageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ListingImageMutation) ClearField(name string) error {
	switch name {
	case listingimage.FieldAltText:
		m.ClearAltText()
		return nil
	}
	return fmt.Errorf("unknown ListingImage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ListingImageMutation) ResetField(name string) error {
	switch name {
	case listingimage.FieldListingID:
		m.ResetListingID()
		return nil
	case listingimage.FieldURL:
		m.ResetURL()
		return nil
	case listingimage.FieldAltText:
		m.ResetAltText()
		return nil
	case listingimage.FieldStatus:
		m.ResetStatus()
		return nil
	case listingimage.FieldIsHero:
		m.ResetIsHero()
		return nil
	case listingimage.FieldDisplayOrder:
		m.ResetDisplayOrder()
		return nil
	case listingimage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ListingImage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ListingImageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.listing != nil {
		edges = append(edges, listingimage.EdgeListing)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ListingImageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case listingimage.EdgeListing:
		if id := m.listing; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ListingImageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ListingImageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ListingImageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedlisting {
		edges = append(edges, listingimage.EdgeListing)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ListingImageMutation) EdgeCleared(name string) bool {
	switch name {
	case listingimage.EdgeListing:
		return m.clearedlisting
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ListingImageMutation) ClearEdge(name string) error {
	switch name {
	case listingimage.EdgeListing:
		m.ClearListing()
		return nil
	}
	return fmt.Errorf("unknown ListingImage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ListingImageMutation) ResetEdge(name string) error {
	switch name {
	case listingimage.EdgeListing:
		m.ResetListing()
		return nil
	}
	return fmt.Errorf("unknown ListingImage edge %s", name)
}

// SubmissionMutation represents an operation that mutates the Submission nodes in the graph.
type SubmissionMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	status           *string
	category         *string
	business_name    *string
	business_address *string
	business_phone   *string
	business_website *string
	submitter_name   *string
	submitter_email  *string
	submitter_phone  *string
	description      *string
	admin_notes      *string
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*Submission, error)
	predicates       []predicate.Submission
}

var _ ent.Mutation = (*SubmissionMutation)(nil)

// submissionOption allows management of the mutation configuration using functional options.
type submissionOption func(*SubmissionMutation)

// newSubmissionMutation creates new mutation for the Submission entity.
func newSubmissionMutation(c config, op Op, opts ...submissionOption) *SubmissionMutation {
	m := &SubmissionMutation{
		config:        c,
		op:            op,
		typ:           TypeSubmission,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSubmissionID sets the ID field of the mutation.
func withSubmissionID(id uuid.UUID) submissionOption {
	return func(m *SubmissionMutation) {
		var (
			err   error
			once  sync.Once
			value *Submission
		)
		m.oldValue = func(ctx context.Context) (*Submission, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Submission.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSubmission sets the old Submission of the mutation.
func withSubmission(node *Submission) submissionOption {
	return func(m *SubmissionMutation) {
		m.oldValue = func(context.Context) (*Submission, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SubmissionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SubmissionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Submission entities.
func (m *SubmissionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SubmissionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SubmissionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Submission.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStatus sets the "status" field.
func (m *SubmissionMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SubmissionMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SubmissionMutation) ResetStatus() {
	m.status = nil
}

// SetCategory sets the "category" field.
func (m *SubmissionMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *SubmissionMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *SubmissionMutation) ResetCategory() {
	m.category = nil
}

// SetBusinessName sets the "business_name" field.
func (m *SubmissionMutation) SetBusinessName(s string) {
	m.business_name = &s
}

// BusinessName returns the value of the "business_name" field in the mutation.
func (m *SubmissionMutation) BusinessName() (r string, exists bool) {
	v := m.business_name
	if v == nil {
		return
	}
	return *v, true
}

// OldBusinessName returns the old "business_name" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldBusinessName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBusinessName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBusinessName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBusinessName: %w", err)
	}
	return oldValue.BusinessName, nil
}

// ResetBusinessName resets all changes to the "business_name" field.
func (m *SubmissionMutation) ResetBusinessName() {
	m.business_name = nil
}

// SetBusinessAddress sets the "business_address" field.
func (m *SubmissionMutation) SetBusinessAddress(s string) {
	m.business_address = &s
}

// BusinessAddress returns the value of the "business_address" field in the mutation.
func (m *SubmissionMutation) BusinessAddress() (r string, exists bool) {
	v := m.business_address
	if v == nil {
		return
	}
	return *v, true
}

// OldBusinessAddress returns the old "business_address" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldBusinessAddress(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBusinessAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBusinessAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBusinessAddress: %w", err)
	}
	return oldValue.BusinessAddress, nil
}

// ClearBusinessAddress clears the value of the "business_address" field.
func (m *SubmissionMutation) ClearBusinessAddress() {
	m.business_address = nil
	m.clearedFields[submission.FieldBusinessAddress] = struct{}{}
}

// BusinessAddressCleared returns if the "business_address" field was cleared in this mutation.
func (m *SubmissionMutation) BusinessAddressCleared() bool {
	_, ok := m.clearedFields[submission.FieldBusinessAddress]
	return ok
}

// ResetBusinessAddress resets all changes to the "business_address" field.
func (m *SubmissionMutation) ResetBusinessAddress() {
	m.business_address = nil
	delete(m.clearedFields, submission.FieldBusinessAddress)
}

// SetBusinessPhone sets the "business_phone" field.
func (m *SubmissionMutation) SetBusinessPhone(s string) {
	m.business_phone = &s
}

// BusinessPhone returns the value of the "business_phone" field in the mutation.
func (m *SubmissionMutation) BusinessPhone() (r string, exists bool) {
	v := m.business_phone
	if v == nil {
		return
	}
	return *v, true
}

// OldBusinessPhone returns the old "business_phone" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldBusinessPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBusinessPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBusinessPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBusinessPhone: %w", err)
	}
	return oldValue.BusinessPhone, nil
}

// ClearBusinessPhone clears the value of the "business_phone" field.
func (m *SubmissionMutation) ClearBusinessPhone() {
	m.business_phone = nil
	m.clearedFields[submission.FieldBusinessPhone] = struct{}{}
}

// BusinessPhoneCleared returns if the "business_phone" field was cleared in this mutation.
func (m *SubmissionMutation) BusinessPhoneCleared() bool {
	_, ok := m.clearedFields[submission.FieldBusinessPhone]
	return ok
}

// ResetBusinessPhone resets all changes to the "business_phone" field.
func (m *SubmissionMutation) ResetBusinessPhone() {
	m.business_phone = nil
	delete(m.clearedFields, submission.FieldBusinessPhone)
}

// SetBusinessWebsite sets the "business_website" field.
func (m *SubmissionMutation) SetBusinessWebsite(s string) {
	m.business_website = &s
}

// BusinessWebsite returns the value of the "business_website" field in the mutation.
func (m *SubmissionMutation) BusinessWebsite() (r string, exists bool) {
	v := m.business_website
	if v == nil {
		return
	}
	return *v, true
}

// OldBusinessWebsite returns the old "business_website" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldBusinessWebsite(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBusinessWebsite is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBusinessWebsite requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBusinessWebsite: %w", err)
	}
	return oldValue.BusinessWebsite, nil
}

// ClearBusinessWebsite clears the value of the "business_website" field.
func (m *SubmissionMutation) ClearBusinessWebsite() {
	m.business_website = nil
	m.clearedFields[submission.FieldBusinessWebsite] = struct{}{}
}

// BusinessWebsiteCleared returns if the "business_website" field was cleared in this mutation.
func (m *SubmissionMutation) BusinessWebsiteCleared() bool {
	_, ok := m.clearedFields[submission.FieldBusinessWebsite]
	return ok
}

// ResetBusinessWebsite resets all changes to the "business_website" field.
func (m *SubmissionMutation) ResetBusinessWebsite() {
	m.business_website = nil
	delete(m.clearedFields, submission.FieldBusinessWebsite)
}

// SetSubmitterName sets the "submitter_name" field.
func (m *SubmissionMutation) SetSubmitterName(s string) {
	m.submitter_name = &s
}

// SubmitterName returns the value of the "submitter_name" field in the mutation.
func (m *SubmissionMutation) SubmitterName() (r string, exists bool) {
	v := m.submitter_name
	if v == nil {
		return
	}
	return *v, true
}

// OldSubmitterName returns the old "submitter_name" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldSubmitterName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubmitterName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubmitterName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubmitterName: %w", err)
	}
	return oldValue.SubmitterName, nil
}

// ResetSubmitterName resets all changes to the "submitter_name" field.
func (m *SubmissionMutation) ResetSubmitterName() {
	m.submitter_name = nil
}

// SetSubmitterEmail sets the "submitter_email" field.
func (m *SubmissionMutation) SetSubmitterEmail(s string) {
	m.submitter_email = &s
}

// SubmitterEmail returns the value of the "submitter_email" field in the mutation.
func (m *SubmissionMutation) SubmitterEmail() (r string, exists bool) {
	v := m.submitter_email
	if v == nil {
		return
	}
	return *v, true
}

// OldSubmitterEmail returns the old "submitter_email" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldSubmitterEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubmitterEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubmitterEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubmitterEmail: %w", err)
	}
	return oldValue.SubmitterEmail, nil
}

// ResetSubmitterEmail resets all changes to the "submitter_email" field.
func (m *SubmissionMutation) ResetSubmitterEmail() {
	m.submitter_email = nil
}

// SetSubmitterPhone sets the "submitter_phone" field.
func (m *SubmissionMutation) SetSubmitterPhone(s string) {
	m.submitter_phone = &s
}

// SubmitterPhone returns the value of the "submitter_phone" field in the mutation.
func (m *SubmissionMutation) SubmitterPhone() (r string, exists bool) {
	v := m.submitter_phone
	if v == nil {
		return
	}
	return *v, true
}

// OldSubmitterPhone returns the old "submitter_phone" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldSubmitterPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubmitterPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubmitterPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubmitterPhone: %w", err)
	}
	return oldValue.SubmitterPhone, nil
}

// ClearSubmitterPhone clears the value of the "submitter_phone" field.
func (m *SubmissionMutation) ClearSubmitterPhone() {
	m.submitter_phone = nil
	m.clearedFields[submission.FieldSubmitterPhone] = struct{}{}
}

// SubmitterPhoneCleared returns if the "submitter_phone" field was cleared in this mutation.
func (m *SubmissionMutation) SubmitterPhoneCleared() bool {
	_, ok := m.clearedFields[submission.FieldSubmitterPhone]
	return ok
}

// ResetSubmitterPhone resets all changes to the "submitter_phone" field.
func (m *SubmissionMutation) ResetSubmitterPhone() {
	m.submitter_phone = nil
	delete(m.clearedFields, submission.FieldSubmitterPhone)
}

// SetDescription sets the "description" field.
func (m *SubmissionMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *SubmissionMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *SubmissionMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[submission.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *SubmissionMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[submission.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *SubmissionMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, submission.FieldDescription)
}

// SetAdminNotes sets the "admin_notes" field.
func (m *SubmissionMutation) SetAdminNotes(s string) {
	m.admin_notes = &s
}

// AdminNotes returns the value of the "admin_notes" field in the mutation.
func (m *SubmissionMutation) AdminNotes() (r string, exists bool) {
	v := m.admin_notes
	if v == nil {
		return
	}
	return *v, true
}

// OldAdminNotes returns the old "admin_notes" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldAdminNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdminNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdminNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdminNotes: %w", err)
	}
	return oldValue.AdminNotes, nil
}

// ClearAdminNotes clears the value of the "admin_notes" field.
func (m *SubmissionMutation) ClearAdminNotes() {
	m.admin_notes = nil
	m.clearedFields[submission.FieldAdminNotes] = struct{}{}
}

// AdminNotesCleared returns if the "admin_notes" field was cleared in this mutation.
func (m *SubmissionMutation) AdminNotesCleared() bool {
	_, ok := m.clearedFields[submission.FieldAdminNotes]
	return ok
}

// ResetAdminNotes resets all changes to the "admin_notes" field.
func (m *SubmissionMutation) ResetAdminNotes() {
	m.admin_notes = nil
	delete(m.clearedFields, submission.FieldAdminNotes)
}

// SetCreatedAt sets the "created_at" field.
func (m *SubmissionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SubmissionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SubmissionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SubmissionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SubmissionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SubmissionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the SubmissionMutation builder.
func (m *SubmissionMutation) Where(ps ...predicate.Submission) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SubmissionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SubmissionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Submission, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SubmissionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SubmissionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Submission).
func (m *SubmissionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SubmissionMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.status != nil {
		fields = append(fields, submission.FieldStatus)
	}
	if m.category != nil {
		fields = append(fields, submission.FieldCategory)
	}
	if m.business_name != nil {
		fields = append(fields, submission.FieldBusinessName)
	}
	if m.business_address != nil {
		fields = append(fields, submission.FieldBusinessAddress)
	}
	if m.business_phone != nil {
		fields = append(fields, submission.FieldBusinessPhone)
	}
	if m.business_website != nil {
		fields = append(fields, submission.FieldBusinessWebsite)
	}
	if m.submitter_name != nil {
		fields = append(fields, submission.FieldSubmitterName)
	}
	if m.submitter_email != nil {
		fields = append(fields, submission.FieldSubmitterEmail)
	}
	if m.submitter_phone != nil {
		fields = append(fields, submission.FieldSubmitterPhone)
	}
	if m.description != nil {
		fields = append(fields, submission.FieldDescription)
	}
	if m.admin_notes != nil {
		fields = append(fields, submission.FieldAdminNotes)
	}
	if m.created_at != nil {
		fields = append(fields, submission.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, submission.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SubmissionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case submission.FieldStatus:
		return m.Status()
	case submission.FieldCategory:
		return m.Category()
	case submission.FieldBusinessName:
		return m.BusinessName()
	case submission.FieldBusinessAddress:
		return m.BusinessAddress()
	case submission.FieldBusinessPhone:
		return m.BusinessPhone()
	case submission.FieldBusinessWebsite:
		return m.BusinessWebsite()
	case submission.FieldSubmitterName:
		return m.SubmitterName()
	case submission.FieldSubmitterEmail:
		return m.SubmitterEmail()
	case submission.FieldSubmitterPhone:
		return m.SubmitterPhone()
	case submission.FieldDescription:
		return m.Description()
	case submission.FieldAdminNotes:
		return m.AdminNotes()
	case submission.FieldCreatedAt:
		return m.CreatedAt()
	case submission.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SubmissionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case submission.FieldStatus:
		return m.OldStatus(ctx)
	case submission.FieldCategory:
		return m.OldCategory(ctx)
	case submission.FieldBusinessName:
		return m.OldBusinessName(ctx)
	case submission.FieldBusinessAddress:
		return m.OldBusinessAddress(ctx)
	case submission.FieldBusinessPhone:
		return m.OldBusinessPhone(ctx)
	case submission.FieldBusinessWebsite:
		return m.OldBusinessWebsite(ctx)
	case submission.FieldSubmitterName:
		return m.OldSubmitterName(ctx)
	case submission.FieldSubmitterEmail:
		return m.OldSubmitterEmail(ctx)
	case submission.FieldSubmitterPhone:
		return m.OldSubmitterPhone(ctx)
	case submission.FieldDescription:
		return m.OldDescription(ctx)
	case submission.FieldAdminNotes:
		return m.OldAdminNotes(ctx)
	case submission.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case submission.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Submission field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubmissionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case submission.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case submission.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case submission.FieldBusinessName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBusinessName(v)
		return nil
	case submission.FieldBusinessAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBusinessAddress(v)
		return nil
	case submission.FieldBusinessPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBusinessPhone(v)
		return nil
	case submission.FieldBusinessWebsite:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBusinessWebsite(v)
		return nil
	case submission.FieldSubmitterName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubmitterName(v)
		return nil
	case submission.FieldSubmitterEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubmitterEmail(v)
		return nil
	case submission.FieldSubmitterPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubmitterPhone(v)
		return nil
	case submission.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case submission.FieldAdminNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdminNotes(v)
		return nil
	case submission.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case submission.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Submission field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SubmissionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SubmissionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubmissionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Submission numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SubmissionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(submission.FieldBusinessAddress) {
		fields = append(fields, submission.FieldBusinessAddress)
	}
	if m.FieldCleared(submission.FieldBusinessPhone) {
		fields = append(fields, submission.FieldBusinessPhone)
	}
	if m.FieldCleared(submission.FieldBusinessWebsite) {
		fields = append(fields, submission.FieldBusinessWebsite)
	}
	if m.FieldCleared(submission.FieldSubmitterPhone) {
		fields = append(fields, submission.FieldSubmitterPhone)
	}
	if m.FieldCleared(submission.FieldDescription) {
		fields = append(fields, submission.FieldDescription)
	}
	if m.FieldCleared(submission.FieldAdminNotes) {
		fields = append(fields, submission.FieldAdminNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SubmissionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SubmissionMutation) ClearField(name string) error {
	switch name {
	case submission.FieldBusinessAddress:
		m.ClearBusinessAddress()
		return nil
	case submission.FieldBusinessPhone:
		m.ClearBusinessPhone()
		return nil
	case submission.FieldBusinessWebsite:
		m.ClearBusinessWebsite()
		return nil
	case submission.FieldSubmitterPhone:
		m.ClearSubmitterPhone()
		return nil
	case submission.FieldDescription:
		m.ClearDescription()
		return nil
	case submission.FieldAdminNotes:
		m.ClearAdminNotes()
		return nil
	}
	return fmt.Errorf("unknown Submission nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SubmissionMutation) ResetField(name string) error {
	switch name {
	case submission.FieldStatus:
		m.ResetStatus()
		return nil
	case submission.FieldCategory:
		m.ResetCategory()
		return nil
	case submission.FieldBusinessName:
		m.ResetBusinessName()
		return nil
	case submission.FieldBusinessAddress:
		m.ResetBusinessAddress()
		return nil
	case submission.FieldBusinessPhone:
		m.ResetBusinessPhone()
		return nil
	case submission.FieldBusinessWebsite:
		m.ResetBusinessWebsite()
		return nil
	case submission.FieldSubmitterName:
		m.ResetSubmitterName()
		return nil
	case submission.FieldSubmitterEmail:
		m.ResetSubmitterEmail()
		return nil
	case submission.FieldSubmitterPhone:
		m.ResetSubmitterPhone()
		return nil
	case submission.FieldDescription:
		m.ResetDescription()
		return nil
	case submission.FieldAdminNotes:
		m.ResetAdminNotes()
		return nil
	case submission.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case submission.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Submission field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SubmissionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SubmissionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SubmissionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SubmissionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SubmissionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SubmissionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SubmissionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Submission unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SubmissionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Submission edge %s", name)
}
