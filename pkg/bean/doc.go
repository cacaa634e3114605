// Package bean defines property descriptors, the name-keyed property
// registry, and the Bean/Class capability pair used to read and write named
// properties without static knowledge of the underlying representation.
//
// A Class is a runtime value describing one logical shape; every Bean it
// creates shares the same property set. Descriptors are classified from an
// explicit TypeRef rather than by inspecting host types.
package bean
