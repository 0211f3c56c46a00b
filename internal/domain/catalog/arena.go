package catalog

import (
	"fmt"

	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

// DefaultMaxDepth profundidad máxima de la jerarquía antes de considerarla corrupta.
const DefaultMaxDepth = 64

// Node categoría reducida a lo que necesitan los recorridos del árbol.
// Padre e hijos son ids, no punteros: el árbol vive en el Arena.
type Node struct {
	ID           int64
	ParentID     *int64
	Name         string
	Slug         string
	CategoryType *string // nombre del tipo propio del nodo (solo raíces)
}

// Arena nodos indexados por id más la lista de hijos activos ya cargados.
// Se llena bajo demanda desde la capa de aplicación y se reutiliza entre varias lecturas.
type Arena struct {
	nodes    map[int64]Node
	children map[int64][]int64
	maxDepth int
}

// NewArena crea un arena vacío; maxDepth <= 0 usa DefaultMaxDepth.
func NewArena(maxDepth int) *Arena {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &Arena{
		nodes:    make(map[int64]Node),
		children: make(map[int64][]int64),
		maxDepth: maxDepth,
	}
}

// MaxDepth límite de saltos para recorridos hacia arriba o hacia abajo.
func (a *Arena) MaxDepth() int { return a.maxDepth }

// Put agrega o reemplaza un nodo.
func (a *Arena) Put(n Node) { a.nodes[n.ID] = n }

// Node devuelve el nodo si está cargado.
func (a *Arena) Node(id int64) (Node, bool) {
	n, ok := a.nodes[id]
	return n, ok
}

// SetChildren registra los hijos activos de parentID (lista ya cargada, posiblemente vacía).
func (a *Arena) SetChildren(parentID int64, ids []int64) {
	a.children[parentID] = append([]int64(nil), ids...)
}

// Children devuelve los hijos cargados; ok=false si aún no se consultaron.
func (a *Arena) Children(parentID int64) ([]int64, bool) {
	ids, ok := a.children[parentID]
	return ids, ok
}

// MissingAncestor recorre la cadena de padres desde id y devuelve el primer id que falta en el arena.
// ok=false significa que la cadena está completa hasta la raíz.
func (a *Arena) MissingAncestor(id int64) (missing int64, ok bool, err error) {
	visited := make(map[int64]struct{})
	cur := id
	for depth := 0; ; depth++ {
		if depth > a.maxDepth {
			return 0, false, fmt.Errorf("%w: la categoría %d supera la profundidad máxima (%d)", domain.ErrCorruptHierarchy, id, a.maxDepth)
		}
		if _, seen := visited[cur]; seen {
			return 0, false, fmt.Errorf("%w: ciclo detectado en la categoría %d", domain.ErrCorruptHierarchy, cur)
		}
		visited[cur] = struct{}{}
		n, loaded := a.nodes[cur]
		if !loaded {
			return cur, true, nil
		}
		if n.ParentID == nil {
			return 0, false, nil
		}
		cur = *n.ParentID
	}
}

// FullPath arma el breadcrumb raíz→hoja de la categoría id. Cada salto aporta un elemento cuyo
// category_type es el del propio nodo (sin herencia). O(profundidad).
// Requiere que los ancestros estén cargados (ver MissingAncestor).
func (a *Arena) FullPath(id int64) ([]entity.PathItem, error) {
	var path []entity.PathItem
	visited := make(map[int64]struct{})
	cur := id
	for {
		if len(path) > a.maxDepth {
			return nil, fmt.Errorf("%w: la categoría %d supera la profundidad máxima (%d)", domain.ErrCorruptHierarchy, id, a.maxDepth)
		}
		if _, seen := visited[cur]; seen {
			return nil, fmt.Errorf("%w: ciclo detectado en la categoría %d", domain.ErrCorruptHierarchy, cur)
		}
		visited[cur] = struct{}{}
		n, ok := a.nodes[cur]
		if !ok {
			return nil, fmt.Errorf("%w: ancestro %d no cargado", domain.ErrCorruptHierarchy, cur)
		}
		path = append(path, entity.PathItem{
			Name:         n.Name,
			Slug:         n.Slug,
			CategoryType: n.CategoryType,
			Kind:         entity.PathKindCategory,
		})
		if n.ParentID == nil {
			break
		}
		cur = *n.ParentID
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

// IsAncestor indica si candidate aparece en la cadena de padres de id (incluido id).
// Se usa al mover una categoría para no colgarla de su propio subárbol.
func (a *Arena) IsAncestor(candidate, id int64) (bool, error) {
	visited := make(map[int64]struct{})
	cur := id
	for depth := 0; depth <= a.maxDepth; depth++ {
		if cur == candidate {
			return true, nil
		}
		if _, seen := visited[cur]; seen {
			return false, fmt.Errorf("%w: ciclo detectado en la categoría %d", domain.ErrCorruptHierarchy, cur)
		}
		visited[cur] = struct{}{}
		n, ok := a.nodes[cur]
		if !ok {
			return false, fmt.Errorf("%w: ancestro %d no cargado", domain.ErrCorruptHierarchy, cur)
		}
		if n.ParentID == nil {
			return false, nil
		}
		cur = *n.ParentID
	}
	return false, fmt.Errorf("%w: la categoría %d supera la profundidad máxima (%d)", domain.ErrCorruptHierarchy, id, a.maxDepth)
}
