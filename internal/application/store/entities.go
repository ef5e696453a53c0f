package store

import (
	"github.com/jhoicas/autogestion/internal/application/ports"
	"github.com/jhoicas/autogestion/internal/domain/entity"
	"github.com/jhoicas/autogestion/pkg/logger"
)

// crud rutas REST uniformes: /base y /base/{id}.
func crud(base string) Endpoints {
	item := base + "/{id}"
	return Endpoints{List: base, Get: item, Create: base, Update: item, Delete: item}
}

// Clientes contenedor de /client.
func Clientes(b ports.Backend, n ports.Notifier, log *logger.Logger) *Collection[entity.Cliente] {
	return NewCollection[entity.Cliente]("clientes", b, n, log, crud("/client"), Messages{
		ListError:   "Error al obtener clientes",
		GetError:    "Error al obtener cliente por ID",
		Created:     "Cliente registrado exitosamente",
		CreateError: "Error al registrar cliente",
		Updated:     "Cliente actualizado exitosamente",
		UpdateError: "Error al actualizar cliente",
		Deleted:     "Cliente eliminado exitosamente",
		DeleteError: "Error al eliminar cliente",
	})
}

// Empleados contenedor de /employee.
func Empleados(b ports.Backend, n ports.Notifier, log *logger.Logger) *Collection[entity.Empleado] {
	return NewCollection[entity.Empleado]("empleados", b, n, log, crud("/employee"), Messages{
		ListError:   "Error al obtener empleados",
		GetError:    "Error al obtener empleado por ID",
		Created:     "Empleado registrado exitosamente",
		CreateError: "Error al registrar empleado",
		Updated:     "Empleado actualizado exitosamente",
		UpdateError: "Error al actualizar empleado",
		Deleted:     "Empleado eliminado exitosamente",
		DeleteError: "Error al eliminar empleado",
	})
}

// Proveedores contenedor de /supplier.
func Proveedores(b ports.Backend, n ports.Notifier, log *logger.Logger) *Collection[entity.Proveedor] {
	return NewCollection[entity.Proveedor]("proveedores", b, n, log, crud("/supplier"), Messages{
		ListError:   "Error al obtener proveedores",
		GetError:    "Error al obtener proveedor por ID",
		Created:     "Proveedor registrado exitosamente",
		CreateError: "Error al registrar proveedor",
		Updated:     "Proveedor actualizado exitosamente",
		UpdateError: "Error al actualizar proveedor",
		Deleted:     "Proveedor eliminado exitosamente",
		DeleteError: "Error al eliminar proveedor",
	})
}

// Vehiculos contenedor de /vehicle. El backend no expone modificación.
func Vehiculos(b ports.Backend, n ports.Notifier, log *logger.Logger) *Collection[entity.Vehiculo] {
	ep := crud("/vehicle")
	ep.Update = ""
	return NewCollection[entity.Vehiculo]("vehiculos", b, n, log, ep, Messages{
		ListError:   "Error al obtener los vehículos",
		GetError:    "Error al obtener el vehículo",
		Created:     "Vehículo registrado exitosamente",
		CreateError: "Error al registrar el vehículo",
		Deleted:     "Vehículo eliminado exitosamente",
		DeleteError: "Error al eliminar el vehículo",
	})
}

// Usuarios contenedor de la administración de usuarios. No hay consulta por id.
func Usuarios(b ports.Backend, n ports.Notifier, log *logger.Logger) *Collection[entity.Usuario] {
	return NewCollection[entity.Usuario]("usuarios", b, n, log, Endpoints{
		List:   "/admin/get-users",
		Create: "/admin/create-user",
		Update: "/admin/update-user/{id}",
		Delete: "/admin/delete-user/{id}",
	}, Messages{
		ListError:   "Error al obtener usuarios",
		Created:     "Usuario creado exitosamente",
		CreateError: "Error al crear usuario",
		Updated:     "Usuario actualizado exitosamente",
		UpdateError: "Error al actualizar usuario",
		Deleted:     "Usuario eliminado exitosamente",
		DeleteError: "Error al eliminar usuario",
	})
}
