package html

// InventoryReportTemplate renders the organized inventory grouped by warehouse
const InventoryReportTemplate = `<!DOCTYPE html>
<html lang="es">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Inventario organizado - {{.Summary.GeneratedDate}}</title>
    <style>
        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }

        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;
            background: #f5f7fa;
            color: #2c3e50;
            line-height: 1.6;
        }

        .container {
            max-width: 1200px;
            margin: 0 auto;
            padding: 20px;
        }

        header {
            background: linear-gradient(135deg, #2f855a 0%, #276749 100%);
            color: white;
            padding: 40px 20px;
            margin-bottom: 30px;
            border-radius: 8px;
            box-shadow: 0 4px 6px rgba(0, 0, 0, 0.1);
        }

        header h1 {
            font-size: 2.2em;
            margin-bottom: 10px;
        }

        header p {
            font-size: 1.1em;
            opacity: 0.9;
        }

        .summary {
            background: white;
            padding: 20px;
            border-radius: 8px;
            margin-bottom: 30px;
            box-shadow: 0 2px 4px rgba(0, 0, 0, 0.05);
        }

        .summary h2 {
            color: #2f855a;
            margin-bottom: 15px;
            font-size: 1.5em;
        }

        .stats {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(200px, 1fr));
            gap: 15px;
            margin-top: 15px;
        }

        .stat-card {
            background: #f8f9fa;
            padding: 15px;
            border-radius: 6px;
            border-left: 4px solid #2f855a;
        }

        .stat-card .label {
            font-size: 0.9em;
            color: #6c757d;
            margin-bottom: 5px;
        }

        .stat-card .value {
            font-size: 1.8em;
            font-weight: bold;
            color: #2c3e50;
        }

        .warehouse {
            background: white;
            border-radius: 8px;
            margin-bottom: 25px;
            box-shadow: 0 2px 4px rgba(0, 0, 0, 0.05);
            overflow: hidden;
        }

        .warehouse h3 {
            padding: 15px 20px;
            background: #edf2f7;
            font-size: 1.2em;
        }

        .warehouse h3 .count {
            font-weight: normal;
            color: #6c757d;
            font-size: 0.85em;
            margin-left: 8px;
        }

        table {
            width: 100%;
            border-collapse: collapse;
        }

        th, td {
            padding: 10px 20px;
            border-bottom: 1px solid #e2e8f0;
            text-align: left;
        }

        th {
            background: #f8f9fa;
            font-size: 0.9em;
            color: #4a5568;
        }

        td.qty {
            text-align: right;
            font-variant-numeric: tabular-nums;
        }

        td.qty.text {
            background: #fff3cd;
            color: #8a6d00;
        }

        .size-badge {
            display: inline-block;
            padding: 2px 8px;
            border-radius: 4px;
            background: #c6f6d5;
            color: #22543d;
            font-weight: bold;
            font-size: 0.85em;
        }

        footer {
            text-align: center;
            color: #a0aec0;
            font-size: 0.85em;
            margin-top: 40px;
        }
    </style>
</head>
<body>
    <div class="container">
        <header>
            <h1>Inventario organizado con tallas</h1>
            <p>{{if .Summary.SourceName}}{{.Summary.SourceName}} · {{end}}{{.Summary.GeneratedDate}}</p>
        </header>

        <section class="summary">
            <h2>Resumen</h2>
            <div class="stats">
                <div class="stat-card">
                    <div class="label">Productos</div>
                    <div class="value">{{.Summary.TotalRecords}}</div>
                </div>
                <div class="stat-card">
                    <div class="label">Con talla</div>
                    <div class="value">{{.Summary.SizedRecords}}</div>
                </div>
                <div class="stat-card">
                    <div class="label">Bodegas</div>
                    <div class="value">{{len .Summary.Warehouses}}</div>
                </div>
                <div class="stat-card">
                    <div class="label">Cantidad total</div>
                    <div class="value">{{printf "%g" .Summary.NumericTotal}}</div>
                </div>
                {{if .Summary.TextQuantity}}
                <div class="stat-card">
                    <div class="label">Cantidades no numéricas</div>
                    <div class="value">{{.Summary.TextQuantity}}</div>
                </div>
                {{end}}
            </div>
        </section>

        {{range .Groups}}
        <section class="warehouse">
            <h3>{{.Label}}<span class="count">{{len .Records}} productos</span></h3>
            <table>
                <thead>
                    <tr>
                        <th>#</th>
                        {{range $.Headers}}<th>{{.}}</th>{{end}}
                    </tr>
                </thead>
                <tbody>
                    {{range $i, $r := .Records}}
                    <tr>
                        <td>{{add $i 1}}</td>
                        <td>{{$r.Warehouse}}</td>
                        <td>{{$r.ProductCode}}</td>
                        <td>{{$r.ProductName}}</td>
                        <td>{{if $r.Size}}<span class="size-badge">{{$r.Size}}</span>{{else}}-{{end}}</td>
                        <td class="qty{{if textQty $r.Quantity}} text{{end}}">{{quantity $r.Quantity}}</td>
                    </tr>
                    {{end}}
                </tbody>
            </table>
        </section>
        {{else}}
        <section class="summary">
            <p>No se encontraron productos en el archivo.</p>
        </section>
        {{end}}

        <footer>Generado por stock-organizer</footer>
    </div>
</body>
</html>
`
